package bytestring

import "unsafe"

// bytesToString converts b to a string without allocating. The returned
// string shares memory with b, so b must not be mutated while the string is
// alive. ByteString storage is never mutated after construction, which is
// what makes this safe here.
func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

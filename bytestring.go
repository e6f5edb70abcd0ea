// Package bytestring provides an owned, immutable byte-string value used as
// the raw representation of CSV field and record data.
//
// CSV files in the wild are frequently not UTF-8 encoded, and a single file
// can even mix several 8-bit encodings. A ByteString therefore places no
// restriction on its content: it stores exactly the bytes the parser saw,
// and decoding to text is a separate, fallible step the caller opts into
// via IntoUTF8String.
package bytestring

import (
	"bytes"
	"errors"
	"fmt"
	"hash/crc32"
	"iter"
	"slices"
	"unicode/utf8"
)

// ByteString holds an immutable, owned sequence of bytes.
type ByteString struct {
	b []byte
}

// FromBytes adopts b as the ByteString's storage without copying.
// The caller must not mutate b afterwards.
func FromBytes(b []byte) ByteString {
	return ByteString{b: b}
}

// CopyBytes copies b into a new ByteString, leaving the caller free to
// reuse its slice.
func CopyBytes(b []byte) ByteString {
	return ByteString{b: cloneBytes(b)}
}

// FromString takes the UTF-8 bytes of s. No validation is performed; a Go
// string may hold any byte sequence and is stored as-is.
func FromString(s string) ByteString {
	return ByteString{b: []byte(s)}
}

// Collect drains seq into a new ByteString, preserving order. seq must be
// finite; it is consumed exactly once.
func Collect(seq iter.Seq[byte]) ByteString {
	return ByteString{b: slices.Collect(seq)}
}

// Len returns the number of bytes.
func (s ByteString) Len() int {
	return len(s.b)
}

// IsEmpty reports whether the ByteString holds no bytes.
func (s ByteString) IsEmpty() bool {
	return len(s.b) == 0
}

// Bytes returns the underlying bytes without copying. The returned slice
// must be treated as read-only.
func (s ByteString) Bytes() []byte {
	return s.b
}

// ByteSlice returns a copy to prevent external mutation.
func (s ByteString) ByteSlice() []byte {
	return cloneBytes(s.b)
}

// Slice returns a read-only view of the half-open range [start, end).
// Indices must satisfy 0 <= start <= end <= Len(); a violation panics
// exactly as the equivalent slice expression would. Callers holding
// untrusted offsets should use Range instead.
func (s ByteString) Slice(start, end int) []byte {
	return s.b[start:end]
}

// SliceFrom returns a read-only view from start to the end of the bytes.
func (s ByteString) SliceFrom(start int) []byte {
	return s.b[start:]
}

// SliceTo returns a read-only view of the first end bytes.
func (s ByteString) SliceTo(end int) []byte {
	return s.b[:end]
}

// ErrRange reports a Range call with indices outside the ByteString.
var ErrRange = errors.New("bytestring: range out of bounds")

// RangeError describes the rejected range. It unwraps to ErrRange.
type RangeError struct {
	Start, End, Len int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("bytestring: range [%d:%d) out of bounds for length %d", e.Start, e.End, e.Len)
}

func (e *RangeError) Unwrap() error {
	return ErrRange
}

// Range is the checked form of Slice: it returns a *RangeError instead of
// panicking when the range is invalid.
func (s ByteString) Range(start, end int) ([]byte, error) {
	if start < 0 || end < start || end > len(s.b) {
		return nil, &RangeError{Start: start, End: end, Len: len(s.b)}
	}
	return s.b[start:end], nil
}

// IntoBytes returns the underlying storage without copying. It consumes
// the ByteString: the receiver must not be used after the call.
func (s ByteString) IntoBytes() []byte {
	return s.b
}

// InvalidUTF8Error is returned by IntoUTF8String when the content is not
// well-formed UTF-8. Bytes holds the original ByteString unchanged, so the
// caller loses nothing by attempting the conversion.
type InvalidUTF8Error struct {
	Bytes ByteString
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("bytestring: invalid UTF-8 in %v", e.Bytes)
}

// IntoUTF8String consumes the ByteString and validates its content as
// UTF-8. On success the returned string shares the underlying storage, so
// the receiver must not be used after the call. On failure the original
// bytes come back untouched inside a *InvalidUTF8Error.
func (s ByteString) IntoUTF8String() (string, error) {
	if !utf8.Valid(s.b) {
		return "", &InvalidUTF8Error{Bytes: s}
	}
	return bytesToString(s.b), nil
}

// Equal reports element-wise byte equality.
func (s ByteString) Equal(other ByteString) bool {
	return bytes.Equal(s.b, other.b)
}

// Compare orders ByteStrings lexicographically by byte value. The result
// follows bytes.Compare: -1 if s < other, 0 if equal, +1 if s > other.
func (s ByteString) Compare(other ByteString) int {
	return bytes.Compare(s.b, other.b)
}

// Sum32 returns the CRC-32 (IEEE) checksum of the bytes. Equal ByteStrings
// produce equal sums.
func (s ByteString) Sum32() uint32 {
	return crc32.ChecksumIEEE(s.b)
}

// MapKey returns the bytes as a string for use as a native map key. Go
// string hashing and equality are byte-wise, so two ByteStrings produce the
// same key iff Equal reports true.
func (s ByteString) MapKey() string {
	return string(s.b)
}

// EqualString reports whether the bytes match the UTF-8 encoding of str
// exactly, without building an intermediate ByteString or copying.
func (s ByteString) EqualString(str string) bool {
	return bytesToString(s.b) == str
}

// String renders the literal byte values, e.g. [255 50 48 49]. The content
// may not be valid UTF-8, so no text decode is attempted here; a failing or
// lossy decode in the display path would be worse than showing raw bytes.
func (s ByteString) String() string {
	return fmt.Sprint(s.b)
}

// cloneBytes is a small helper used to enforce immutability.
func cloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

package main

import (
	"bytes"
	"bytestring"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	// Field inspector: split raw input on an ASCII delimiter and report
	// which fields survive a UTF-8 decode. Demonstrates working with
	// ByteString on data that may not be valid UTF-8.
	input := flag.String("input", "", "raw record to inspect; reads stdin when empty")
	delim := flag.String("delim", ",", "single ASCII byte used as the field separator")
	flag.Parse()

	logrus.SetOutput(os.Stdout)

	if err := run(*input, *delim); err != nil {
		fmt.Printf("inspect error: %v\n", err)
		os.Exit(1)
	}
}

func run(input, delim string) error {
	if len(delim) != 1 || delim[0] > 0x7F {
		return fmt.Errorf("delimiter must be a single ASCII byte, got %q", delim)
	}

	record, err := readRecord(input)
	if err != nil {
		return err
	}

	for i, field := range splitFields(record, delim[0]) {
		inspectField(i, field)
	}
	return nil
}

func readRecord(input string) ([]byte, error) {
	// readRecord takes the flag value when present, stdin otherwise.
	if input != "" {
		return []byte(input), nil
	}
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return bytes.TrimSuffix(raw, []byte("\n")), nil
}

func splitFields(record []byte, delim byte) []bytestring.ByteString {
	parts := bytes.Split(record, []byte{delim})
	fields := make([]bytestring.ByteString, 0, len(parts))
	for _, p := range parts {
		fields = append(fields, bytestring.CopyBytes(p))
	}
	return fields
}

func inspectField(i int, field bytestring.ByteString) {
	sum := field.Sum32()
	text, err := field.IntoUTF8String()
	if err != nil {
		var invalid *bytestring.InvalidUTF8Error
		if errors.As(err, &invalid) {
			// The payload is the original bytes, so nothing was lost.
			logrus.Warnf("field %d: not UTF-8, %d raw bytes %v (crc32 %08x)",
				i, invalid.Bytes.Len(), invalid.Bytes, invalid.Bytes.Sum32())
			return
		}
		logrus.Errorf("field %d: %v", i, err)
		return
	}
	logrus.Infof("field %d: %q (%d bytes, crc32 %08x)", i, text, len(text), sum)
}

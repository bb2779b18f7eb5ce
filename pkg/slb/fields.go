package slb

import (
	"fmt"
	"io"
	"math"

	"github.com/kaitai-io/kaitai_struct_go_runtime/kaitai"
	"golang.org/x/text/encoding/charmap"
)

// SLB strings are stored as ISO-8859-1.
var latin1 = charmap.ISO8859_1

// remaining returns the number of unread bytes in s.
func remaining(s *kaitai.Stream) (int64, error) {
	size, err := s.Size()
	if err != nil {
		return 0, fmt.Errorf("getting stream size: %w", err)
	}
	pos, err := s.Pos()
	if err != nil {
		return 0, fmt.Errorf("getting stream position: %w", err)
	}
	return size - pos, nil
}

// ensure fails with io.ErrUnexpectedEOF when fewer than n bytes remain.
func ensure(s *kaitai.Stream, field string, n int64) error {
	left, err := remaining(s)
	if err != nil {
		return fieldError(field, err)
	}
	if left < n {
		return fieldError(field, io.ErrUnexpectedEOF)
	}
	return nil
}

// readFixed reads a fixed-size field of size bytes with read.
func readFixed[T any](s *kaitai.Stream, field string, size int64, read func() (T, error)) (T, error) {
	var zero T
	if err := ensure(s, field, size); err != nil {
		return zero, err
	}
	v, err := read()
	if err != nil {
		return zero, fieldError(field, err)
	}
	return v, nil
}

// readCount reads a u4 element count and checks that count elements of at
// least minSize bytes each fit in the rest of the stream.
func readCount(s *kaitai.Stream, field string, minSize int64) (int, error) {
	n, err := readFixed(s, field, 4, s.ReadU4le)
	if err != nil {
		return 0, err
	}
	left, err := remaining(s)
	if err != nil {
		return 0, fieldError(field, err)
	}
	if int64(n)*minSize > left {
		return 0, fieldError(field, &LengthError{Length: int64(n) * minSize, Remaining: left})
	}
	return int(n), nil
}

func writeCount(w *kaitai.Writer, field string, n int) error {
	if uint64(n) > math.MaxUint32 {
		return fieldError(field, fmt.Errorf("%d elements do not fit a u4 count", n))
	}
	if err := w.WriteU4le(uint32(n)); err != nil {
		return fieldError(field, err)
	}
	return nil
}

func readString(s *kaitai.Stream, field string) (string, error) {
	n, err := readCount(s, field, 1)
	if err != nil {
		return "", err
	}
	raw, err := s.ReadBytes(n)
	if err != nil {
		return "", fieldError(field, err)
	}
	decoded, err := latin1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fieldError(field, fmt.Errorf("decoding string: %w", err))
	}
	return string(decoded), nil
}

func writeString(w *kaitai.Writer, field, value string) error {
	encoded, err := latin1.NewEncoder().Bytes([]byte(value))
	if err != nil {
		return fieldError(field, fmt.Errorf("encoding %q as ISO-8859-1: %w", value, err))
	}
	if err := writeCount(w, field, len(encoded)); err != nil {
		return err
	}
	if err := w.WriteBytes(encoded); err != nil {
		return fieldError(field, err)
	}
	return nil
}

func readStrings(s *kaitai.Stream, field string) ([]string, error) {
	// Every string carries at least its 4 byte length.
	n, err := readCount(s, field, 4)
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, n)
	for i := 0; i < n; i++ {
		value, err := readString(s, fmt.Sprintf("%s[%d]", field, i))
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

func writeStrings(w *kaitai.Writer, field string, values []string) error {
	if err := writeCount(w, field, len(values)); err != nil {
		return err
	}
	for i, value := range values {
		if err := writeString(w, fmt.Sprintf("%s[%d]", field, i), value); err != nil {
			return err
		}
	}
	return nil
}

func readBool(s *kaitai.Stream, field string) (bool, error) {
	v, err := readFixed(s, field, 1, s.ReadU1)
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, fieldError(field, &DiscriminatorError{Value: uint64(v), Allowed: []uint64{0, 1}})
}

func writeBool(w *kaitai.Writer, field string, v bool) error {
	var b uint8
	if v {
		b = 1
	}
	if err := w.WriteU1(b); err != nil {
		return fieldError(field, err)
	}
	return nil
}

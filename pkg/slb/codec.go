package slb

import (
	"bytes"
	"fmt"

	"github.com/kaitai-io/kaitai_struct_go_runtime/kaitai"
)

// Codec reads and writes one SLB schema.
type Codec interface {
	// Name returns the schema name, e.g. "creature".
	Name() string
	// Read decodes a complete record from s. The returned value is a pointer
	// to the schema's record type.
	Read(s *kaitai.Stream) (any, error)
	// Write encodes v, a record value or a pointer to one, to w.
	Write(w *kaitai.Writer, v any) error
	// NewValue returns a pointer to a zero record, ready to be decoded into.
	NewValue() any
}

// record is implemented by the pointer type of every SLB record.
type record interface {
	decode(s *kaitai.Stream) error
	encode(w *kaitai.Writer) error
	constraintVars() map[string]any
}

// schema implements Codec for the record type T.
type schema[T any, P interface {
	*T
	record
}] struct {
	name  string
	magic []byte
	rules *Rules
}

func (c *schema[T, P]) Name() string {
	return c.name
}

func (c *schema[T, P]) NewValue() any {
	return P(new(T))
}

func (c *schema[T, P]) Read(s *kaitai.Stream) (any, error) {
	if err := c.readMagic(s); err != nil {
		return nil, err
	}

	value := P(new(T))
	if err := value.decode(s); err != nil {
		return nil, err
	}

	if err := expectEOF(s); err != nil {
		return nil, err
	}

	if err := c.rules.Check(value.constraintVars()); err != nil {
		return nil, err
	}

	return value, nil
}

func (c *schema[T, P]) Write(w *kaitai.Writer, v any) error {
	value, err := c.cast(v)
	if err != nil {
		return err
	}

	if err := c.rules.Check(value.constraintVars()); err != nil {
		return err
	}

	if err := w.WriteBytes(c.magic); err != nil {
		return fieldError(c.name+".magic", err)
	}
	return value.encode(w)
}

func (c *schema[T, P]) readMagic(s *kaitai.Stream) error {
	field := c.name + ".magic"
	if err := ensure(s, field, int64(len(c.magic))); err != nil {
		return err
	}
	got, err := s.ReadBytes(len(c.magic))
	if err != nil {
		return fieldError(field, err)
	}
	if !bytes.Equal(got, c.magic) {
		return &MagicError{Schema: c.name, Want: c.magic, Got: got}
	}
	return nil
}

func (c *schema[T, P]) cast(v any) (P, error) {
	switch value := v.(type) {
	case P:
		if value == nil {
			return nil, fmt.Errorf("%s: cannot encode a nil record", c.name)
		}
		return value, nil
	case T:
		return P(&value), nil
	}
	return nil, fmt.Errorf("%s: cannot encode value of type %T", c.name, v)
}

// expectEOF fails when s still has unread bytes.
func expectEOF(s *kaitai.Stream) error {
	left, err := remaining(s)
	if err != nil {
		return err
	}
	if left != 0 {
		return fmt.Errorf("%w: %d bytes", ErrTrailingData, left)
	}
	return nil
}

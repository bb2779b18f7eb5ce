package slb

import (
	"errors"
	"fmt"
)

// ErrTrailingData is returned when bytes remain after a complete record.
var ErrTrailingData = errors.New("trailing data after record")

// FieldError locates a low-level read or write failure within a record.
type FieldError struct {
	Field string
	Err   error
}

func fieldError(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// MagicError is returned when a file does not start with the schema magic.
type MagicError struct {
	Schema string
	Want   []byte
	Got    []byte
}

func (e *MagicError) Error() string {
	return fmt.Sprintf("%s: bad magic %q, expected %q", e.Schema, e.Got, e.Want)
}

// LengthError is returned when a length or count prefix points past the end
// of the stream.
type LengthError struct {
	Length    int64
	Remaining int64
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("length %d exceeds the %d bytes remaining", e.Length, e.Remaining)
}

// DiscriminatorError is returned for an encoded value outside its allowed set.
type DiscriminatorError struct {
	Value   uint64
	Allowed []uint64
}

func (e *DiscriminatorError) Error() string {
	return fmt.Sprintf("invalid value %d, expected one of %v", e.Value, e.Allowed)
}

// ConstraintError is returned when a record violates one of its schema rules.
// Err is set when the rule could not be evaluated at all.
type ConstraintError struct {
	Schema string
	Rule   string
	Err    error
}

func (e *ConstraintError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: constraint violated: %s: %v", e.Schema, e.Rule, e.Err)
	}
	return fmt.Sprintf("%s: constraint violated: %s", e.Schema, e.Rule)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

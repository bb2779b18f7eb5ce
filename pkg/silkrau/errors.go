package silkrau

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// ErrNotImplemented marks code paths reached only through a programming
// error, such as an out of range FileFormat.
var ErrNotImplemented = errors.New("not implemented")

// Error is implemented by every error the user can act on. Any other error
// reaching the command line is treated as fatal.
type Error interface {
	error
	silkRau()
}

// UnknownFileTypeError is returned when a file type is not registered.
type UnknownFileTypeError struct {
	FileType string
}

func (e *UnknownFileTypeError) Error() string {
	return fmt.Sprintf("unknown file type %q", e.FileType)
}

func (*UnknownFileTypeError) silkRau() {}

// UnsupportedConversionError is returned for a format pair that cannot be
// converted.
type UnsupportedConversionError struct {
	Conversion FileConversion
}

func (e *UnsupportedConversionError) Error() string {
	return fmt.Sprintf("conversion from %v is not supported", e.Conversion)
}

func (*UnsupportedConversionError) silkRau() {}

// PathConflictError is returned when the output file exists and overwriting
// was not forced.
type PathConflictError struct {
	Path string
}

func (e *PathConflictError) Error() string {
	return fmt.Sprintf("output file %s already exists, use --force to overwrite it", e.Path)
}

func (*PathConflictError) silkRau() {}

// BadFormatError is returned when an input file cannot be decoded with the
// selected schema. Cause is the error returned by the codec, unchanged.
type BadFormatError struct {
	FileType   string
	Path       string
	Conversion FileConversion
	Cause      error

	trace error
}

func newBadFormatError(fileType, path string, conversion FileConversion, cause error) *BadFormatError {
	return &BadFormatError{
		FileType:   fileType,
		Path:       path,
		Conversion: conversion,
		Cause:      cause,
		trace:      pkgerrors.WithStack(cause),
	}
}

func (e *BadFormatError) Error() string {
	return fmt.Sprintf("%s is not a valid %v %s file: %v", e.Path, e.Conversion.Input, e.FileType, e.Cause)
}

func (e *BadFormatError) Unwrap() error {
	return e.Cause
}

// StackTrace returns the stack at the point the cause was translated.
func (e *BadFormatError) StackTrace() pkgerrors.StackTrace {
	if st, ok := e.trace.(stackTracer); ok {
		return st.StackTrace()
	}
	return nil
}

func (*BadFormatError) silkRau() {}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// FailureStack returns the innermost stack trace recorded in err's chain,
// one frame per line. Without one, the current goroutine's stack is used.
func FailureStack(err error) string {
	var trace pkgerrors.StackTrace
	for e := err; e != nil; e = errors.Unwrap(e) {
		if st, ok := e.(stackTracer); ok && st.StackTrace() != nil {
			trace = st.StackTrace()
		}
	}

	if trace == nil {
		return strings.TrimSpace(string(debug.Stack()))
	}
	return strings.TrimSpace(fmt.Sprintf("%+v", trace))
}

// FailureTrace renders err followed by FailureStack(err).
func FailureTrace(err error) string {
	return err.Error() + "\n" + FailureStack(err)
}

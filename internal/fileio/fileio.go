// Package fileio provides the scoped file access used by conversions. Inputs
// are loaded fully into memory before they are decoded, and outputs are
// replaced atomically so a failed run never leaves a partial file behind.
package fileio

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio"
	"github.com/kaitai-io/kaitai_struct_go_runtime/kaitai"
	"github.com/pkg/errors"
)

const (
	// DefaultFilePermissions is the mode of files written by Files.
	DefaultFilePermissions os.FileMode = 0o644
)

// Files reads and writes conversion inputs and outputs on the local
// filesystem.
type Files struct {
	perm os.FileMode
}

// New creates Files writing with DefaultFilePermissions.
func New() *Files {
	return &Files{perm: DefaultFilePermissions}
}

// ReadBinaryFromFile loads path and passes a stream over its contents to fn.
// Errors opening or reading the file are returned with a stack trace; the
// result and error of fn are returned untouched.
func (f *Files) ReadBinaryFromFile(path string, fn func(*kaitai.Stream) (any, error)) (any, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return fn(kaitai.NewStream(bytes.NewReader(data)))
}

// ReadTextFromFile returns the contents of path as a string.
func (f *Files) ReadTextFromFile(path string) (string, error) {
	data, err := readFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteTextToFile atomically replaces path with contents.
func (f *Files) WriteTextToFile(path, contents string) error {
	return f.writeFileAtomically(path, []byte(contents))
}

// WriteBinaryToFile atomically replaces path with data.
func (f *Files) WriteBinaryToFile(path string, data []byte) error {
	return f.writeFileAtomically(path, data)
}

func readFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return data, nil
}

// writeFileAtomically stages data in a temporary file next to path and
// renames it into place once everything has been written.
func (f *Files) writeFileAtomically(path string, data []byte) error {
	t, err := renameio.TempFile(filepath.Dir(path), path)
	if err != nil {
		return errors.Wrapf(err, "creating temporary file for %s", path)
	}
	defer func() {
		_ = t.Cleanup()
	}()

	if err := t.Chmod(f.perm); err != nil {
		return errors.Wrapf(err, "setting permissions on %s", path)
	}
	if _, err := t.Write(data); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	if err := t.CloseAtomicallyReplace(); err != nil {
		return errors.Wrapf(err, "replacing %s", path)
	}
	return nil
}

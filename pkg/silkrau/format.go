package silkrau

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// FileFormat is one of the two representations a file can be converted
// between.
type FileFormat int

const (
	// SLB is the binary record format.
	SLB FileFormat = iota + 1
	// Yaml is the text format.
	Yaml
)

var fileFormats = []FileFormat{SLB, Yaml}

func (f FileFormat) String() string {
	switch f {
	case SLB:
		return "SLB"
	case Yaml:
		return "Yaml"
	}
	return fmt.Sprintf("FileFormat(%d)", int(f))
}

// ParseFileFormat returns the format named s, ignoring case.
func ParseFileFormat(s string) (FileFormat, error) {
	for _, f := range fileFormats {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("invalid file format %q, expected one of %s", s, formatNames())
}

func formatNames() string {
	names := make([]string, len(fileFormats))
	for i, f := range fileFormats {
		names[i] = f.String()
	}
	return strings.Join(names, ", ")
}

// ExtensionForFormat returns the file extension, without the dot, used for
// files in format f. Only SLB and Yaml have one; any other value is a
// programming error.
func ExtensionForFormat(f FileFormat) (string, error) {
	switch f {
	case SLB:
		return "slb", nil
	case Yaml:
		return "yaml", nil
	}
	return "", errors.Wrapf(ErrNotImplemented, "extension for %v", f)
}

// FileConversion is a requested (input format, output format) pair.
type FileConversion struct {
	Input  FileFormat
	Output FileFormat
}

func (c FileConversion) String() string {
	return fmt.Sprintf("%v to %v", c.Input, c.Output)
}

var (
	// SLBToYaml converts binary files to text.
	SLBToYaml = FileConversion{Input: SLB, Output: Yaml}
	// YamlToSLB converts text files to binary.
	YamlToSLB = FileConversion{Input: Yaml, Output: SLB}
)

// Direction selects which way a Converter runs.
type Direction int

const (
	BinaryToText Direction = iota
	TextToBinary
)

func (d Direction) String() string {
	switch d {
	case BinaryToText:
		return "binary to text"
	case TextToBinary:
		return "text to binary"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

package silkrau

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ConvertOptions describes one conversion requested on the command line.
type ConvertOptions struct {
	InputFile    string
	OutputFile   string
	FileType     string
	InputFormat  FileFormat
	OutputFormat FileFormat
	Force        bool
}

func (o ConvertOptions) String() string {
	return fmt.Sprintf("convert --input-file %q --output-file %q --file-type %q --input-format %v --output-format %v --force=%t",
		o.InputFile, o.OutputFile, o.FileType, o.InputFormat, o.OutputFormat, o.Force)
}

// PrintOptions selects what Program.Print lists.
type PrintOptions struct {
	FileTypes   bool
	Conversions bool
}

func (o PrintOptions) String() string {
	return fmt.Sprintf("print --file-types=%t --conversions=%t", o.FileTypes, o.Conversions)
}

// PathValidator checks output paths before anything is written.
type PathValidator interface {
	ValidateFileDoesNotExist(path string) error
}

// FilesystemPathValidator checks paths against the local filesystem.
type FilesystemPathValidator struct{}

// ValidateFileDoesNotExist returns a *PathConflictError if path exists.
func (FilesystemPathValidator) ValidateFileDoesNotExist(path string) error {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return &PathConflictError{Path: path}
	case errors.Is(err, os.ErrNotExist):
		return nil
	}
	return errors.Wrapf(err, "checking output path %s", path)
}

// Program runs the convert and print commands.
type Program struct {
	registry *Registry
	factory  *Factory
	out      io.Writer
	paths    PathValidator
	logger   *slog.Logger
}

// NewProgram creates a Program writing listings to out.
func NewProgram(registry *Registry, factory *Factory, out io.Writer, paths PathValidator) *Program {
	return &Program{
		registry: registry,
		factory:  factory,
		out:      out,
		paths:    paths,
		logger:   factory.options.logger,
	}
}

// Convert converts opts.InputFile. Without an explicit output file the input
// path is reused with the extension of the output format.
func (p *Program) Convert(opts ConvertOptions) error {
	outputFile := opts.OutputFile
	if outputFile == "" {
		ext, err := ExtensionForFormat(opts.OutputFormat)
		if err != nil {
			return err
		}
		outputFile = ChangeExtension(opts.InputFile, ext)
	}

	if !opts.Force {
		if err := p.paths.ValidateFileDoesNotExist(outputFile); err != nil {
			return err
		}
	}

	converter, err := p.factory.BuildConverter(opts.FileType, FileConversion{
		Input:  opts.InputFormat,
		Output: opts.OutputFormat,
	})
	if err != nil {
		return err
	}

	p.logger.Debug("Converting file", "input", opts.InputFile, "output", outputFile, "direction", converter.Direction().String())
	return converter.Convert(opts.InputFile, outputFile)
}

// Print writes the supported file types or conversions, one per line.
func (p *Program) Print(opts PrintOptions) error {
	switch {
	case opts.FileTypes:
		for _, fileType := range p.registry.SupportedFileTypes() {
			if _, err := fmt.Fprintln(p.out, fileType); err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	case opts.Conversions:
		for _, conversion := range p.factory.ValidConversions() {
			if _, err := fmt.Fprintln(p.out, conversion); err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}
	return errors.Wrap(ErrNotImplemented, "print without a listing selected")
}

// ChangeExtension replaces the extension of path with ext, or appends it when
// path has none.
func ChangeExtension(path, ext string) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	return base + "." + ext
}

package silkrau

import (
	"log/slog"

	"github.com/kaitai-io/kaitai_struct_go_runtime/kaitai"
	"github.com/twinfer/silkrau/internal/fileio"
	"github.com/twinfer/silkrau/pkg/yamlcodec"
)

// TextCodec converts record values to and from text.
type TextCodec interface {
	Serialize(v any) (string, error)
	// Deserialize decodes text into v, which must be a pointer.
	Deserialize(text string, v any) error
}

// FileIO is the file access a Converter needs.
type FileIO interface {
	// ReadBinaryFromFile opens path, calls fn with a stream over its
	// contents, and releases the file before returning.
	ReadBinaryFromFile(path string, fn func(*kaitai.Stream) (any, error)) (any, error)
	ReadTextFromFile(path string) (string, error)
	WriteTextToFile(path, contents string) error
	WriteBinaryToFile(path string, data []byte) error
}

// options holds configuration shared by the Factory and the Converters it
// builds.
type options struct {
	textCodec TextCodec
	io        FileIO
	logger    *slog.Logger
}

// Option is a function that configures a Factory.
type Option func(*options)

// WithTextCodec replaces the YAML codec.
func WithTextCodec(codec TextCodec) Option {
	return func(o *options) {
		o.textCodec = codec
	}
}

// WithIO replaces the filesystem access.
func WithIO(io FileIO) Option {
	return func(o *options) {
		o.io = io
	}
}

// WithLogger sets a custom logger
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// defaultOptions returns the default configuration
func defaultOptions() options {
	return options{
		textCodec: yamlcodec.New(),
		io:        fileio.New(),
		logger:    slog.Default(),
	}
}

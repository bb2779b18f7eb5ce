package silkrau

import (
	"bytes"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/kaitai-io/kaitai_struct_go_runtime/kaitai"
	"github.com/pkg/errors"
	"github.com/twinfer/silkrau/pkg/slb"
)

// Converter converts one file between SLB and text. Converters are built by
// a Factory, used for a single Convert call and not shared between
// goroutines.
type Converter struct {
	fileType   string
	conversion FileConversion
	direction  Direction
	codec      slb.Codec
	text       TextCodec
	io         FileIO
	logger     *slog.Logger
}

// Direction reports which way c converts.
func (c *Converter) Direction() Direction {
	return c.direction
}

// Convert reads inputFilePath, converts it and writes outputFilePath. Input
// that does not decode under the file type's schema fails with a
// *BadFormatError, and the output file is only written once the whole input
// has been converted in memory.
func (c *Converter) Convert(inputFilePath, outputFilePath string) error {
	switch c.direction {
	case BinaryToText:
		return c.binaryToText(inputFilePath, outputFilePath)
	case TextToBinary:
		return c.textToBinary(inputFilePath, outputFilePath)
	}
	return errors.Wrapf(ErrNotImplemented, "converting %v", c.direction)
}

func (c *Converter) binaryToText(inputFilePath, outputFilePath string) error {
	c.logger.Debug("Reading binary input", "path", inputFilePath)

	value, err := c.io.ReadBinaryFromFile(inputFilePath, func(s *kaitai.Stream) (any, error) {
		value, err := c.codec.Read(s)
		if err != nil {
			return nil, c.badFormat(inputFilePath, err)
		}
		return value, nil
	})
	if err != nil {
		return err
	}

	contents, err := c.text.Serialize(value)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := c.io.WriteTextToFile(outputFilePath, contents); err != nil {
		return err
	}

	c.logger.Debug("Converted file",
		"input", inputFilePath,
		"output", outputFilePath,
		"size", humanize.Bytes(uint64(len(contents))))
	return nil
}

func (c *Converter) textToBinary(inputFilePath, outputFilePath string) error {
	c.logger.Debug("Reading text input", "path", inputFilePath)

	contents, err := c.io.ReadTextFromFile(inputFilePath)
	if err != nil {
		return err
	}

	value := c.codec.NewValue()
	if err := c.text.Deserialize(contents, value); err != nil {
		return c.badFormat(inputFilePath, err)
	}

	var buf bytes.Buffer
	if err := c.codec.Write(kaitai.NewWriter(&buf), value); err != nil {
		// Writing goes to memory, so a failure means the decoded value does
		// not fit the schema.
		return c.badFormat(inputFilePath, err)
	}

	if err := c.io.WriteBinaryToFile(outputFilePath, buf.Bytes()); err != nil {
		return err
	}

	c.logger.Debug("Converted file",
		"input", inputFilePath,
		"output", outputFilePath,
		"size", humanize.Bytes(uint64(buf.Len())))
	return nil
}

func (c *Converter) badFormat(path string, cause error) *BadFormatError {
	return newBadFormatError(c.fileType, path, c.conversion, cause)
}

// Package yamlcodec implements the text side of SLB conversions on top of
// gopkg.in/yaml.v3.
package yamlcodec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned when deserializing text with no YAML document.
var ErrEmptyDocument = errors.New("yaml: empty document")

// Codec serializes record values to YAML and back.
type Codec struct {
	indent int
	strict bool
}

// Option configures a Codec.
type Option func(*Codec)

// WithIndent sets the number of spaces used per nesting level.
func WithIndent(spaces int) Option {
	return func(c *Codec) {
		c.indent = spaces
	}
}

// WithStrict controls whether unknown keys are rejected when deserializing.
func WithStrict(strict bool) Option {
	return func(c *Codec) {
		c.strict = strict
	}
}

// New returns a Codec indenting with two spaces and rejecting unknown keys.
func New(opts ...Option) *Codec {
	c := &Codec{indent: 2, strict: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Serialize renders v as a single YAML document.
func (c *Codec) Serialize(v any) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(c.indent)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("closing yaml encoder: %w", err)
	}
	return buf.String(), nil
}

// Deserialize decodes exactly one YAML document from text into v, which must
// be a pointer. A missing or null document fails with ErrEmptyDocument.
func (c *Codec) Deserialize(text string, v any) error {
	if err := checkSingleDocument(text); err != nil {
		return err
	}

	dec := yaml.NewDecoder(strings.NewReader(text))
	dec.KnownFields(c.strict)
	return dec.Decode(v)
}

func checkSingleDocument(text string) error {
	dec := yaml.NewDecoder(strings.NewReader(text))

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyDocument
		}
		return err
	}
	if len(doc.Content) == 0 || doc.Content[0].ShortTag() == "!!null" {
		return ErrEmptyDocument
	}

	// A second document means the file holds more than one record.
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return err
		}
		return errors.New("yaml: expected a single document")
	}
	return nil
}

package silkrau

import (
	"bytes"

	"github.com/kaitai-io/kaitai_struct_go_runtime/kaitai"
)

// fakeCodec is a slb.Codec returning canned results.
type fakeCodec struct {
	readValue any
	readErr   error
	writeData []byte
	writeErr  error

	reads  int
	writes []any
}

func (c *fakeCodec) Name() string { return "fake" }

func (c *fakeCodec) Read(*kaitai.Stream) (any, error) {
	c.reads++
	return c.readValue, c.readErr
}

func (c *fakeCodec) Write(w *kaitai.Writer, v any) error {
	c.writes = append(c.writes, v)
	if c.writeErr != nil {
		return c.writeErr
	}
	return w.WriteBytes(c.writeData)
}

func (c *fakeCodec) NewValue() any { return new(string) }

func (c *fakeCodec) calls() int { return c.reads + len(c.writes) }

// fakeText is a TextCodec returning canned results.
type fakeText struct {
	text           string
	serializeErr   error
	deserializeErr error

	serialized   []any
	deserialized []string
}

func (t *fakeText) Serialize(v any) (string, error) {
	t.serialized = append(t.serialized, v)
	return t.text, t.serializeErr
}

func (t *fakeText) Deserialize(text string, v any) error {
	t.deserialized = append(t.deserialized, text)
	if t.deserializeErr != nil {
		return t.deserializeErr
	}
	*(v.(*string)) = text
	return nil
}

func (t *fakeText) calls() int { return len(t.serialized) + len(t.deserialized) }

type textWrite struct {
	path     string
	contents string
}

type binaryWrite struct {
	path string
	data []byte
}

// fakeIO is a FileIO serving inputs from memory and recording writes.
type fakeIO struct {
	binary  map[string][]byte
	text    map[string]string
	readErr error

	reads        []string
	textWrites   []textWrite
	binaryWrites []binaryWrite
}

func (f *fakeIO) ReadBinaryFromFile(path string, fn func(*kaitai.Stream) (any, error)) (any, error) {
	f.reads = append(f.reads, path)
	if f.readErr != nil {
		return nil, f.readErr
	}
	return fn(kaitai.NewStream(bytes.NewReader(f.binary[path])))
}

func (f *fakeIO) ReadTextFromFile(path string) (string, error) {
	f.reads = append(f.reads, path)
	if f.readErr != nil {
		return "", f.readErr
	}
	return f.text[path], nil
}

func (f *fakeIO) WriteTextToFile(path, contents string) error {
	f.textWrites = append(f.textWrites, textWrite{path: path, contents: contents})
	return nil
}

func (f *fakeIO) WriteBinaryToFile(path string, data []byte) error {
	f.binaryWrites = append(f.binaryWrites, binaryWrite{path: path, data: bytes.Clone(data)})
	return nil
}

func (f *fakeIO) calls() int { return len(f.reads) + len(f.textWrites) + len(f.binaryWrites) }

type fixture struct {
	codec   *fakeCodec
	text    *fakeText
	io      *fakeIO
	factory *Factory
}

func newFixture() *fixture {
	fx := &fixture{
		codec: &fakeCodec{},
		text:  &fakeText{},
		io:    &fakeIO{binary: map[string][]byte{}, text: map[string]string{}},
	}
	registry, err := NewRegistry(RegistryEntry{FileType: "creature", Codec: fx.codec})
	if err != nil {
		panic(err)
	}
	fx.factory = NewFactory(registry, WithTextCodec(fx.text), WithIO(fx.io))
	return fx
}

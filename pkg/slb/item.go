package slb

import (
	"github.com/google/cel-go/cel"
	"github.com/kaitai-io/kaitai_struct_go_runtime/kaitai"
)

// Item is the record stored in item SLB files.
type Item struct {
	ID        uint32  `yaml:"id"`
	Name      string  `yaml:"name"`
	Weight    float32 `yaml:"weight"`
	Value     uint32  `yaml:"value"`
	Stackable bool    `yaml:"stackable"`
}

var itemSchema = &schema[Item, *Item]{
	name:  "item",
	magic: []byte("ITEM"),
	rules: mustRules("item",
		[]cel.EnvOption{cel.Variable("weight", cel.DoubleType)},
		"weight >= 0.0",
	),
}

// ItemCodec returns the codec for item files.
func ItemCodec() Codec {
	return itemSchema
}

func (it *Item) decode(s *kaitai.Stream) error {
	var err error
	if it.ID, err = readFixed(s, "item.id", 4, s.ReadU4le); err != nil {
		return err
	}
	if it.Name, err = readString(s, "item.name"); err != nil {
		return err
	}
	if it.Weight, err = readFixed(s, "item.weight", 4, s.ReadF4le); err != nil {
		return err
	}
	if it.Value, err = readFixed(s, "item.value", 4, s.ReadU4le); err != nil {
		return err
	}
	if it.Stackable, err = readBool(s, "item.stackable"); err != nil {
		return err
	}
	return nil
}

func (it *Item) encode(w *kaitai.Writer) error {
	if err := w.WriteU4le(it.ID); err != nil {
		return fieldError("item.id", err)
	}
	if err := writeString(w, "item.name", it.Name); err != nil {
		return err
	}
	if err := w.WriteF4le(it.Weight); err != nil {
		return fieldError("item.weight", err)
	}
	if err := w.WriteU4le(it.Value); err != nil {
		return fieldError("item.value", err)
	}
	return writeBool(w, "item.stackable", it.Stackable)
}

func (it *Item) constraintVars() map[string]any {
	return map[string]any{"weight": float64(it.Weight)}
}

package slb

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/kaitai-io/kaitai_struct_go_runtime/kaitai"
)

// LootTable is the record stored in loot_table SLB files.
type LootTable struct {
	Name    string      `yaml:"name"`
	Entries []LootEntry `yaml:"entries"`
}

// LootEntry is one drop of a loot table.
type LootEntry struct {
	ItemID uint32  `yaml:"item_id"`
	Chance float32 `yaml:"chance"`
	Min    uint16  `yaml:"min"`
	Max    uint16  `yaml:"max"`
}

// lootEntrySize is the encoded size of a LootEntry.
const lootEntrySize = 4 + 4 + 2 + 2

var lootTableSchema = &schema[LootTable, *LootTable]{
	name:  "loot_table",
	magic: []byte("LOOT"),
	rules: mustRules("loot_table",
		[]cel.EnvOption{
			cel.Variable("entries", cel.ListType(cel.MapType(cel.StringType, cel.DynType))),
		},
		"entries.all(e, e.min <= e.max)",
		"entries.all(e, e.chance >= 0.0 && e.chance <= 1.0)",
	),
}

// LootTableCodec returns the codec for loot_table files.
func LootTableCodec() Codec {
	return lootTableSchema
}

func (t *LootTable) decode(s *kaitai.Stream) error {
	var err error
	if t.Name, err = readString(s, "loot_table.name"); err != nil {
		return err
	}
	n, err := readCount(s, "loot_table.entries", lootEntrySize)
	if err != nil {
		return err
	}
	t.Entries = make([]LootEntry, n)
	for i := range t.Entries {
		if err := t.Entries[i].decode(s, fmt.Sprintf("loot_table.entries[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func (t *LootTable) encode(w *kaitai.Writer) error {
	if err := writeString(w, "loot_table.name", t.Name); err != nil {
		return err
	}
	if err := writeCount(w, "loot_table.entries", len(t.Entries)); err != nil {
		return err
	}
	for i, entry := range t.Entries {
		if err := entry.encode(w, fmt.Sprintf("loot_table.entries[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func (t *LootTable) constraintVars() map[string]any {
	entries := make([]map[string]any, 0, len(t.Entries))
	for _, e := range t.Entries {
		entries = append(entries, map[string]any{
			"item_id": int64(e.ItemID),
			"chance":  float64(e.Chance),
			"min":     int64(e.Min),
			"max":     int64(e.Max),
		})
	}
	return map[string]any{"entries": entries}
}

func (e *LootEntry) decode(s *kaitai.Stream, field string) error {
	var err error
	if e.ItemID, err = readFixed(s, field+".item_id", 4, s.ReadU4le); err != nil {
		return err
	}
	if e.Chance, err = readFixed(s, field+".chance", 4, s.ReadF4le); err != nil {
		return err
	}
	if e.Min, err = readFixed(s, field+".min", 2, s.ReadU2le); err != nil {
		return err
	}
	if e.Max, err = readFixed(s, field+".max", 2, s.ReadU2le); err != nil {
		return err
	}
	return nil
}

func (e LootEntry) encode(w *kaitai.Writer, field string) error {
	if err := w.WriteU4le(e.ItemID); err != nil {
		return fieldError(field+".item_id", err)
	}
	if err := w.WriteF4le(e.Chance); err != nil {
		return fieldError(field+".chance", err)
	}
	if err := w.WriteU2le(e.Min); err != nil {
		return fieldError(field+".min", err)
	}
	if err := w.WriteU2le(e.Max); err != nil {
		return fieldError(field+".max", err)
	}
	return nil
}

package slb

import (
	"github.com/google/cel-go/cel"
	"github.com/kaitai-io/kaitai_struct_go_runtime/kaitai"
)

// Creature is the record stored in creature SLB files.
type Creature struct {
	Name   string   `yaml:"name"`
	Health int32    `yaml:"health"`
	Speed  float32  `yaml:"speed"`
	Level  uint16   `yaml:"level"`
	Tags   []string `yaml:"tags"`
}

var creatureSchema = &schema[Creature, *Creature]{
	name:  "creature",
	magic: []byte("CRTR"),
	rules: mustRules("creature",
		[]cel.EnvOption{
			cel.Variable("health", cel.IntType),
			cel.Variable("speed", cel.DoubleType),
			cel.Variable("level", cel.IntType),
		},
		"health >= 0",
		"speed >= 0.0",
		"level >= 1 && level <= 100",
	),
}

// CreatureCodec returns the codec for creature files.
func CreatureCodec() Codec {
	return creatureSchema
}

func (c *Creature) decode(s *kaitai.Stream) error {
	var err error
	if c.Name, err = readString(s, "creature.name"); err != nil {
		return err
	}
	if c.Health, err = readFixed(s, "creature.health", 4, s.ReadS4le); err != nil {
		return err
	}
	if c.Speed, err = readFixed(s, "creature.speed", 4, s.ReadF4le); err != nil {
		return err
	}
	if c.Level, err = readFixed(s, "creature.level", 2, s.ReadU2le); err != nil {
		return err
	}
	if c.Tags, err = readStrings(s, "creature.tags"); err != nil {
		return err
	}
	return nil
}

func (c *Creature) encode(w *kaitai.Writer) error {
	if err := writeString(w, "creature.name", c.Name); err != nil {
		return err
	}
	if err := w.WriteS4le(c.Health); err != nil {
		return fieldError("creature.health", err)
	}
	if err := w.WriteF4le(c.Speed); err != nil {
		return fieldError("creature.speed", err)
	}
	if err := w.WriteU2le(c.Level); err != nil {
		return fieldError("creature.level", err)
	}
	return writeStrings(w, "creature.tags", c.Tags)
}

func (c *Creature) constraintVars() map[string]any {
	return map[string]any{
		"health": int64(c.Health),
		"speed":  float64(c.Speed),
		"level":  int64(c.Level),
	}
}

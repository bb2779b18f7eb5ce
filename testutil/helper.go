// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SLB builds little-endian SLB payloads byte by byte without the codecs.
type SLB struct {
	buf bytes.Buffer
}

// NewSLB starts a payload with the given four byte magic.
func NewSLB(magic string) *SLB {
	b := &SLB{}
	b.buf.WriteString(magic)
	return b
}

// U1 appends an unsigned byte.
func (b *SLB) U1(v uint8) *SLB {
	b.buf.WriteByte(v)
	return b
}

// U2 appends a little-endian u2.
func (b *SLB) U2(v uint16) *SLB {
	b.buf.Write(binary.LittleEndian.AppendUint16(nil, v))
	return b
}

// U4 appends a little-endian u4.
func (b *SLB) U4(v uint32) *SLB {
	b.buf.Write(binary.LittleEndian.AppendUint32(nil, v))
	return b
}

// S4 appends a little-endian s4.
func (b *SLB) S4(v int32) *SLB {
	return b.U4(uint32(v))
}

// F4 appends a little-endian f4.
func (b *SLB) F4(v float32) *SLB {
	return b.U4(math.Float32bits(v))
}

// Str appends a length-prefixed string. s must already be ISO-8859-1 bytes.
func (b *SLB) Str(s string) *SLB {
	b.U4(uint32(len(s)))
	b.buf.WriteString(s)
	return b
}

// Raw appends bytes verbatim.
func (b *SLB) Raw(p ...byte) *SLB {
	b.buf.Write(p)
	return b
}

// Bytes returns the payload built so far.
func (b *SLB) Bytes() []byte {
	return bytes.Clone(b.buf.Bytes())
}

// Creature returns a well-formed creature payload:
// name "Goblin", health 30, speed 1.5, level 3, tags ["green", "small"].
func Creature() []byte {
	return NewSLB("CRTR").
		Str("Goblin").
		S4(30).
		F4(1.5).
		U2(3).
		U4(2).Str("green").Str("small").
		Bytes()
}

// CreatureYAML is the YAML rendering of Creature().
const CreatureYAML = `name: Goblin
health: 30
speed: 1.5
level: 3
tags:
  - green
  - small
`

// WriteFile writes data to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

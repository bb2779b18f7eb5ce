// Package slb implements the binary record codecs for SLB game-data files.
//
// # Overview
//
// Every SLB file holds exactly one record of a single schema. A schema is
// identified by a four byte magic at the start of the file, followed by the
// fields of the record in a fixed order. All integers and floats are little
// endian, strings are a u4 byte length followed by ISO-8859-1 bytes, and
// arrays are a u4 element count followed by the elements.
//
// The codecs read from a *kaitai.Stream and write to a *kaitai.Writer, the
// same primitives generated Kaitai Struct parsers use:
//
//	codec := slb.CreatureCodec()
//	value, err := codec.Read(kaitai.NewStream(bytes.NewReader(data)))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var buf bytes.Buffer
//	if err := codec.Write(kaitai.NewWriter(&buf), value); err != nil {
//	    log.Fatal(err)
//	}
//
// # Schemas
//
//   - creature:   "CRTR" name:str health:s4 speed:f4 level:u2 tags:str[]
//   - item:       "ITEM" id:u4 name:str weight:f4 value:u4 stackable:u1
//   - loot_table: "LOOT" name:str entries:{item_id:u4 chance:f4 min:u2 max:u2}[]
//
// # Validation
//
// Reading is strict: a wrong magic, a length running past the end of the
// stream, an out of range discriminator or trailing bytes after the record
// all fail the read. Each schema also carries CEL rules (see Rules) that a
// record must satisfy both after it is read and before it is written.
package slb

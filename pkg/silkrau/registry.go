package silkrau

import (
	"fmt"

	"github.com/twinfer/silkrau/pkg/slb"
)

// RegistryEntry binds a file type name to its binary codec.
type RegistryEntry struct {
	FileType string
	Codec    slb.Codec
}

// Registry maps file type names to binary codecs. It is immutable once built
// and safe for concurrent use.
type Registry struct {
	order  []string
	codecs map[string]slb.Codec
}

// NewRegistry builds a registry from entries, keeping their order for
// SupportedFileTypes.
func NewRegistry(entries ...RegistryEntry) (*Registry, error) {
	r := &Registry{
		order:  make([]string, 0, len(entries)),
		codecs: make(map[string]slb.Codec, len(entries)),
	}
	for _, entry := range entries {
		if entry.FileType == "" {
			return nil, fmt.Errorf("registering codec: empty file type")
		}
		if entry.Codec == nil {
			return nil, fmt.Errorf("registering %q: nil codec", entry.FileType)
		}
		if _, exists := r.codecs[entry.FileType]; exists {
			return nil, fmt.Errorf("registering %q: file type already registered", entry.FileType)
		}
		r.order = append(r.order, entry.FileType)
		r.codecs[entry.FileType] = entry.Codec
	}
	return r, nil
}

// DefaultRegistry returns a registry holding every schema in package slb.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(
		RegistryEntry{FileType: "creature", Codec: slb.CreatureCodec()},
		RegistryEntry{FileType: "item", Codec: slb.ItemCodec()},
		RegistryEntry{FileType: "loot_table", Codec: slb.LootTableCodec()},
	)
	if err != nil {
		panic(err)
	}
	return r
}

// GetCodecForType returns the codec registered for name.
func (r *Registry) GetCodecForType(name string) (slb.Codec, error) {
	codec, ok := r.codecs[name]
	if !ok {
		return nil, &UnknownFileTypeError{FileType: name}
	}
	return codec, nil
}

// SupportedFileTypes returns the registered file types in registration order.
func (r *Registry) SupportedFileTypes() []string {
	return append([]string(nil), r.order...)
}

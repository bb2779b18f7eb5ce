package silkrau

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twinfer/silkrau/pkg/slb"
)

func TestDefaultRegistry(t *testing.T) {
	registry := DefaultRegistry()

	assert.Equal(t, []string{"creature", "item", "loot_table"}, registry.SupportedFileTypes())

	for _, fileType := range registry.SupportedFileTypes() {
		codec, err := registry.GetCodecForType(fileType)
		require.NoError(t, err)
		assert.Equal(t, fileType, codec.Name())
	}
}

func TestGetCodecForTypeUnknown(t *testing.T) {
	codec, err := DefaultRegistry().GetCodecForType("widget")
	assert.Nil(t, codec)

	var unknown *UnknownFileTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "widget", unknown.FileType)
}

func TestGetCodecForTypeIsCaseSensitive(t *testing.T) {
	_, err := DefaultRegistry().GetCodecForType("Creature")
	var unknown *UnknownFileTypeError
	assert.ErrorAs(t, err, &unknown)
}

func TestNewRegistry(t *testing.T) {
	t.Run("keeps registration order", func(t *testing.T) {
		registry, err := NewRegistry(
			RegistryEntry{FileType: "b", Codec: slb.ItemCodec()},
			RegistryEntry{FileType: "a", Codec: slb.CreatureCodec()},
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a"}, registry.SupportedFileTypes())
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		_, err := NewRegistry(
			RegistryEntry{FileType: "a", Codec: slb.ItemCodec()},
			RegistryEntry{FileType: "a", Codec: slb.CreatureCodec()},
		)
		assert.ErrorContains(t, err, "already registered")
	})

	t.Run("rejects empty names", func(t *testing.T) {
		_, err := NewRegistry(RegistryEntry{Codec: slb.ItemCodec()})
		assert.ErrorContains(t, err, "empty file type")
	})

	t.Run("rejects nil codecs", func(t *testing.T) {
		_, err := NewRegistry(RegistryEntry{FileType: "a"})
		assert.ErrorContains(t, err, "nil codec")
	})
}

func TestSupportedFileTypesReturnsACopy(t *testing.T) {
	registry := DefaultRegistry()
	types := registry.SupportedFileTypes()
	types[0] = "widget"

	assert.Equal(t, "creature", registry.SupportedFileTypes()[0])
	_, err := registry.GetCodecForType("widget")
	assert.Error(t, err)
}

func TestRegistryConcurrentReads(t *testing.T) {
	registry := DefaultRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, fileType := range registry.SupportedFileTypes() {
				_, err := registry.GetCodecForType(fileType)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
}

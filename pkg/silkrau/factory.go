package silkrau

// validConversions lists the supported format pairs in display order.
var validConversions = []FileConversion{SLBToYaml, YamlToSLB}

// Factory builds Converters for a file type and a format pair.
type Factory struct {
	registry *Registry
	options  options
}

// NewFactory creates a Factory resolving codecs through registry.
func NewFactory(registry *Registry, opts ...Option) *Factory {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Factory{registry: registry, options: options}
}

// ValidConversions returns the supported conversions: SLB to Yaml, then Yaml
// to SLB.
func (f *Factory) ValidConversions() []FileConversion {
	return append([]FileConversion(nil), validConversions...)
}

// BuildConverter returns a Converter for fileType running conversion. The
// conversion is checked before the codec is looked up.
func (f *Factory) BuildConverter(fileType string, conversion FileConversion) (*Converter, error) {
	direction, err := directionFor(conversion)
	if err != nil {
		return nil, err
	}

	codec, err := f.registry.GetCodecForType(fileType)
	if err != nil {
		return nil, err
	}

	return &Converter{
		fileType:   fileType,
		conversion: conversion,
		direction:  direction,
		codec:      codec,
		text:       f.options.textCodec,
		io:         f.options.io,
		logger:     f.options.logger.With("file_type", fileType, "conversion", conversion.String()),
	}, nil
}

func directionFor(conversion FileConversion) (Direction, error) {
	switch conversion {
	case SLBToYaml:
		return BinaryToText, nil
	case YamlToSLB:
		return TextToBinary, nil
	}
	return 0, &UnsupportedConversionError{Conversion: conversion}
}

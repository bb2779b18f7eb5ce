// Package silkrau converts SLB game-data files to YAML and back.
//
// # Overview
//
// A conversion is described by a file type, which names the SLB schema, and a
// FileConversion, the pair of input and output formats. The Registry maps
// file types to the binary codecs of package slb, and the Factory combines a
// codec with the YAML codec into a Converter running in the requested
// direction:
//
//	factory := silkrau.NewFactory(silkrau.DefaultRegistry())
//	converter, err := factory.BuildConverter("creature", silkrau.SLBToYaml)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := converter.Convert("goblin.slb", "goblin.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
// Errors a user can act on implement Error:
//
//   - *UnknownFileTypeError: the file type is not registered
//   - *UnsupportedConversionError: the format pair cannot be converted
//   - *PathConflictError: the output exists and overwriting was not forced
//   - *BadFormatError: the input does not decode under the schema
//
// A BadFormatError keeps the codec's error as Cause, so callers can inspect
// the exact structural failure with errors.Is and errors.As. Failures to
// reach the filesystem are never reported as a BadFormatError.
//
// # Output
//
// Nothing is written unless the whole input has been decoded and encoded in
// memory; the output file is then replaced atomically.
package silkrau

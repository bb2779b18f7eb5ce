package main

import (
	"github.com/spf13/cobra"

	"github.com/twinfer/silkrau/pkg/silkrau"
)

func newConvertCommand(a *app) *cobra.Command {
	var opts silkrau.ConvertOptions

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a file between SLB and YAML",
		Example: `  silkrau convert -t creature --input-format slb --output-format yaml -i goblin.slb
  silkrau convert -t creature --input-format yaml --output-format slb -i goblin.yaml -o goblin.slb --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(opts, a.program.Convert)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.InputFile, "input-file", "i", "", "File to convert")
	flags.StringVarP(&opts.OutputFile, "output-file", "o", "", "Destination file (default: the input file with the output format's extension)")
	flags.StringVarP(&opts.FileType, "file-type", "t", "", "File type of the input, see 'silkrau print --file-types'")
	flags.Var(formatValue{&opts.InputFormat}, "input-format", "Format of the input file (slb or yaml)")
	flags.Var(formatValue{&opts.OutputFormat}, "output-format", "Format of the output file (slb or yaml)")
	flags.BoolVarP(&opts.Force, "force", "f", false, "Overwrite the output file if it exists")

	for _, name := range []string{"input-file", "file-type", "input-format", "output-format"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

// formatValue adapts a silkrau.FileFormat to a command line flag.
type formatValue struct {
	format *silkrau.FileFormat
}

func (v formatValue) String() string {
	if v.format == nil || *v.format == 0 {
		return ""
	}
	return v.format.String()
}

func (v formatValue) Set(s string) error {
	format, err := silkrau.ParseFileFormat(s)
	if err != nil {
		return err
	}
	*v.format = format
	return nil
}

func (v formatValue) Type() string {
	return "format"
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/twinfer/silkrau/pkg/silkrau"
)

func newPrintCommand(a *app) *cobra.Command {
	var opts silkrau.PrintOptions

	cmd := &cobra.Command{
		Use:   "print",
		Short: "List supported file types or conversions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(opts, a.program.Print)
		},
	}

	cmd.Flags().BoolVar(&opts.FileTypes, "file-types", false, "List the supported file types")
	cmd.Flags().BoolVar(&opts.Conversions, "conversions", false, "List the valid conversions")
	cmd.MarkFlagsMutuallyExclusive("file-types", "conversions")
	cmd.MarkFlagsOneRequired("file-types", "conversions")

	return cmd
}

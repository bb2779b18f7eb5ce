package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "silkrau",
		Short:         "Convert SLB game-data files to YAML and back",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("missing command, expected convert or print")
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log conversion details to stderr")

	rootCmd.AddCommand(newConvertCommand(a))
	rootCmd.AddCommand(newPrintCommand(a))

	return rootCmd
}

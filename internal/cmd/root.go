package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd bundles both tools under one binary: "calkit cal ..." and "calkit touch ..."
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "calkit",
		Short:         "Calendar and file timestamp utilities",
		Long:          "calkit bundles a month calendar printer (cal) and a file timestamp tool (touch).",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewCalCmd())
	rootCmd.AddCommand(NewTouchCmd())
	rootCmd.AddCommand(NewConfigCmd())

	return rootCmd
}

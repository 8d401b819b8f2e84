package main

import (
	"github.com/spf13/cobra"

	"github.com/weftlang/weft/cmd/weft/internal"
	"github.com/weftlang/weft/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		printer := internal.NewPrinter(internal.OutputFormat(outputFormat), cmd.OutOrStdout())
		if printer.JSONOutput() {
			return printer.Encode(version.Info())
		}
		cmd.Println(version.String())
		return nil
	},
}

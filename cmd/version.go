package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set from main via SetVersion.
var version = "dev"

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the toolbelt version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "toolbelt %s\n", version)
		},
	})
}

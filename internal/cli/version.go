package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the tool version reported by the version subcommand.
const Version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the notion2obsidian version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "notion2obsidian v%s\n", Version)
		},
	}
}

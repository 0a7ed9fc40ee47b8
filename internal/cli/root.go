// Package cli implements the notion2obsidian command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/takak2166/notion2obsidian/internal/logger"
)

type rootFlags struct {
	logLevel string
}

var flags rootFlags

// NewRootCmd creates the top-level command with global flags and all
// subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "notion2obsidian",
		Short:        "Import Notion databases into an Obsidian vault",
		Long:         "notion2obsidian converts the pages of a Notion database into markdown\ndocuments with frontmatter, plus a generated base file for browsing them.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional; real environment variables win either way.
			_ = godotenv.Load()

			level := flags.logLevel
			if level == "" {
				level = os.Getenv("LOG_LEVEL")
			}
			if level == "" {
				level = "info"
			}
			if err := logger.Init(level); err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level (default: info, or LOG_LEVEL)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newDatabasesCmd())
	root.AddCommand(newImportCmd())

	return root
}

// Execute runs the root command, cancelling cooperatively on interrupt.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/takak2166/notion2obsidian/internal/importer"
	"github.com/takak2166/notion2obsidian/internal/models"
	"github.com/takak2166/notion2obsidian/internal/notion"
	"github.com/takak2166/notion2obsidian/internal/vault"
)

type importFlags struct {
	output   string
	folder   string
	skipBase bool
}

func newImportCmd() *cobra.Command {
	var iflags importFlags

	cmd := &cobra.Command{
		Use:   "import <database-id>",
		Short: "Import one database into a folder of markdown documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := notion.New()
			if err != nil {
				return err
			}

			output := iflags.output
			if output == "" {
				output = os.Getenv("OUTPUT_DIR")
			}
			if output == "" {
				output = "output"
			}

			v, err := vault.New(output)
			if err != nil {
				return err
			}

			imp := importer.New(client, v, nil)
			result, err := imp.Run(cmd.Context(), models.ImportRequest{
				DatabaseID:     args[0],
				Folder:         iflags.folder,
				EmitViewSchema: !iflags.skipBase,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d records into %s\n",
				len(result.Files), result.Fetched, output)
			if result.ViewSchemaFile != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "View schema: %s\n", result.ViewSchemaFile)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&iflags.output, "output", "o", "", "output directory (default: OUTPUT_DIR or ./output)")
	cmd.Flags().StringVar(&iflags.folder, "folder", "", "subfolder name (default: the database title)")
	cmd.Flags().BoolVar(&iflags.skipBase, "skip-base", false, "do not emit the generated base file")

	return cmd
}

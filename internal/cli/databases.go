package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/takak2166/notion2obsidian/internal/notion"
)

func newDatabasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "databases",
		Short: "List the databases the integration can reach",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := notion.New()
			if err != nil {
				return err
			}

			dbs, err := client.SearchDatabases(cmd.Context())
			if err != nil {
				return err
			}

			if len(dbs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No databases found. Share a database with the integration first.")
				return nil
			}
			for _, db := range dbs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t(%d properties)\n",
					db.ID, db.DisplayTitle(), len(db.PropertyNames))
			}
			return nil
		},
	}
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nomoos/prismq-idea/ideastore"
	"github.com/nomoos/prismq-idea/logger"
)

// newInitDBCommand creates the ideas database and its schema.
func newInitDBCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Create the ideas database and schema",
		Long: `Open the ideas database at the configured DATABASE_PATH, creating the
file and any missing parent directories, and apply the ideas schema.
Safe to run repeatedly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newCommandDeps()
			if err != nil {
				return err
			}
			defer deps.log.Sync()

			dbPath := deps.databasePath()
			db, err := ideastore.Open(dbPath, ideastore.WithMkdirAll())
			if err != nil {
				return err
			}
			defer db.Close()

			store := ideastore.New(db, deps.log)
			if err := store.EnsureSchema(cmd.Context()); err != nil {
				return err
			}

			deps.log.Info("ideas schema applied", logger.String("path", dbPath))
			fmt.Fprintf(cmd.OutOrStdout(), "Ideas database ready at %s\n", dbPath)
			return nil
		},
	}
}

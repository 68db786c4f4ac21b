package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nomoos/prismq-idea/internal/seedfile"
	"github.com/nomoos/prismq-idea/logger"
)

// defaultSeedFile is looked up in the working directory when no path
// argument is given.
const defaultSeedFile = "ideas.yml"

// newSeedCommand bulk-imports ideas from a YAML file.
func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed [file]",
		Short: "Import ideas from a YAML seed file",
		Long: `Load idea records from a YAML file with a top-level "ideas" list and
insert them all. Without an argument, ideas.yml in the working
directory is used. The file is rejected as a whole if any entry is
invalid.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newCommandDeps()
			if err != nil {
				return err
			}
			defer deps.log.Sync()

			path := filepath.Join(deps.dir, defaultSeedFile)
			if len(args) == 1 {
				path = args[0]
			}

			records, err := seedfile.Load(path)
			if err != nil {
				return err
			}

			store, closeDB, err := deps.openIdeas(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB()

			for _, rec := range records {
				if _, err := store.Insert(cmd.Context(), rec); err != nil {
					return fmt.Errorf("insert %q: %w", rec.Title, err)
				}
			}

			deps.log.Info("seed completed",
				logger.Int("inserted", len(records)),
				logger.String("file", path))
			fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d ideas from %s\n", len(records), path)
			return nil
		},
	}
}

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nomoos/prismq-idea/configstore"
	"github.com/nomoos/prismq-idea/logger"
)

const defaultAppName = "prismq-idea"

// newSetupCommand bootstraps the working directory configuration.
func newSetupCommand() *cobra.Command {
	var (
		appName string
		dbPath  string
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Initialize the working directory configuration",
		Long: `Create or update the .env configuration in the working directory and
seed the keys shared by the PrismQ tools. Existing values are never
overwritten; pass --db to replace the recorded database path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newRootLogger()
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			defer log.Sync()

			store, err := configstore.Setup(resolvedDir, appName, log)
			if err != nil {
				return err
			}

			if dbPath != "" {
				abs, absErr := filepath.Abs(dbPath)
				if absErr != nil {
					return fmt.Errorf("resolve database path: %w", absErr)
				}
				if err := store.Set(configstore.KeyDatabasePath, abs); err != nil {
					return err
				}
				log.Info("database path overridden", logger.String("path", abs))
			}

			if _, err := store.PromptIfMissing(configstore.KeyLogLevel,
				"Log level (debug, info, warn, error)", logger.DefaultLevel); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", store.Path())
			return nil
		},
	}

	cmd.Flags().StringVar(&appName, "app-name", defaultAppName, "tool name recorded in the configuration")
	cmd.Flags().StringVar(&dbPath, "db", "", "override the ideas database path")
	return cmd
}

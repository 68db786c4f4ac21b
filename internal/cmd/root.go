// Package cmd implements the prismq-idea command-line interface: setup
// and inspection tooling for the configuration and ideas database
// shared by the PrismQ tools.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nomoos/prismq-idea/configstore"
	"github.com/nomoos/prismq-idea/ideastore"
	"github.com/nomoos/prismq-idea/logger"
)

const version = "0.1.0"

var (
	// workingDir holds the --working-dir flag value.
	workingDir string

	// debugMode enables debug logging for all commands.
	debugMode bool

	// resolvedDir is the absolute working directory, set before any
	// subcommand runs.
	resolvedDir string

	rootCmd = &cobra.Command{
		Use:   "prismq-idea",
		Short: "Manage the shared PrismQ idea store",
		Long: `prismq-idea maintains the flat KEY=VALUE configuration and the SQLite
ideas database shared by the PrismQ tools operating in one working directory.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			dir := workingDir
			if dir == "" {
				resolved, err := configstore.Resolve()
				if err != nil {
					return fmt.Errorf("resolve working directory: %w", err)
				}
				dir = resolved
			}
			abs, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolve working directory: %w", err)
			}
			resolvedDir = abs

			// Surface the module configuration as environment variables;
			// variables already set win.
			_ = godotenv.Load(filepath.Join(resolvedDir, configstore.DefaultFileName))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&workingDir, "working-dir", "",
		"PrismQ working directory (default: $PRISMQ_WORKING_DIR or auto-detected)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "prismq-idea version %s\n", version)
		},
	})

	rootCmd.AddCommand(
		newSetupCommand(),
		newInitDBCommand(),
		newAddCommand(),
		newSeedCommand(),
		newListCommand(),
		newShowCommand(),
	)
}

// commandDeps holds the shared dependencies a subcommand needs.
type commandDeps struct {
	dir   string
	store *configstore.Store
	log   logger.Logger
}

func newCommandDeps() (*commandDeps, error) {
	log, err := newRootLogger()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	store, err := configstore.New(resolvedDir, configstore.WithLogger(log))
	if err != nil {
		return nil, err
	}
	if err := store.Load(); err != nil {
		return nil, err
	}

	return &commandDeps{dir: resolvedDir, store: store, log: log}, nil
}

// newRootLogger builds the CLI logger. Level comes from LOG_LEVEL (the
// working directory's .env is already loaded into the environment);
// --debug overrides. Logs go to stderr so table output stays clean.
func newRootLogger() (logger.Logger, error) {
	cfg := logger.Config{
		Level:       os.Getenv(configstore.KeyLogLevel),
		OutputPaths: []string{"stderr"},
	}
	if debugMode {
		cfg.Level = "debug"
		cfg.Development = true
	}
	return logger.New(cfg)
}

// databasePath returns the ideas database location: the configured
// DATABASE_PATH, or ideas.db in the working directory.
func (d *commandDeps) databasePath() string {
	return d.store.GetDefault(configstore.KeyDatabasePath,
		filepath.Join(d.dir, configstore.DefaultDatabaseFile))
}

// openIdeas opens the ideas database and guarantees the schema. The
// returned close function releases the underlying handle.
func (d *commandDeps) openIdeas(ctx context.Context) (*ideastore.Store, func() error, error) {
	db, err := ideastore.Open(d.databasePath(), ideastore.WithMkdirAll())
	if err != nil {
		return nil, nil, err
	}
	store := ideastore.New(db, d.log)
	if err := store.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	return store, db.Close, nil
}

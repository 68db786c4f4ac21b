package configstore

import (
	"fmt"
	"path/filepath"

	"github.com/nomoos/prismq-idea/logger"
)

// Keys seeded by Setup and read by the sibling PrismQ tools.
const (
	// KeyAppName identifies the tool that bootstrapped the directory.
	KeyAppName = "APP_NAME"
	// KeyWorkingDir records the shared working directory itself.
	KeyWorkingDir = "WORKING_DIR"
	// KeyDatabasePath points at the shared ideas database file.
	KeyDatabasePath = "DATABASE_PATH"
	// KeyLogLevel sets the logging level for the tools. Not seeded by
	// Setup; absent means the tools' own default.
	KeyLogLevel = "LOG_LEVEL"
)

// DefaultDatabaseFile is the database file name seeded into
// KeyDatabasePath when the key is absent.
const DefaultDatabaseFile = "ideas.db"

// Setup bootstraps dir as a working directory: it loads any existing
// configuration, guarantees the file exists, and seeds the defaults
// sibling tools expect (APP_NAME, WORKING_DIR, DATABASE_PATH) without
// touching keys that are already set. Safe to run repeatedly.
func Setup(dir, appName string, log logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.NewNop()
	}

	store, err := New(dir, WithLogger(log))
	if err != nil {
		return nil, err
	}
	if err := store.Load(); err != nil {
		return nil, fmt.Errorf("load existing configuration: %w", err)
	}

	seed := make(map[string]string)
	if !store.Has(KeyAppName) {
		seed[KeyAppName] = appName
	}
	if !store.Has(KeyWorkingDir) {
		seed[KeyWorkingDir] = store.Dir()
	}
	if !store.Has(KeyDatabasePath) {
		seed[KeyDatabasePath] = filepath.Join(store.Dir(), DefaultDatabaseFile)
	}

	if len(seed) == 0 {
		if err := store.EnsureExists(); err != nil {
			return nil, err
		}
		return store, nil
	}

	if err := store.Update(seed); err != nil {
		return nil, err
	}
	log.Info("working directory configured",
		logger.String("dir", store.Dir()),
		logger.String("file", store.Path()),
		logger.Int("seeded", len(seed)),
	)
	return store, nil
}

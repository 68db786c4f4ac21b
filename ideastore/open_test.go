package ideastore_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomoos/prismq-idea/ideastore"
)

func TestOpen_CreatesDatabaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ideas.db")

	db, err := ideastore.Open(path)
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestOpen_AppliesPragmas(t *testing.T) {
	db, err := ideastore.Open(filepath.Join(t.TempDir(), "ideas.db"), ideastore.WithBusyTimeout(5000))
	require.NoError(t, err)
	defer db.Close()

	// Pin the pool to the connection the pragmas ran on; busy_timeout
	// and foreign_keys are per-connection.
	db.SetMaxOpenConns(1)

	var journalMode string
	require.NoError(t, db.Get(&journalMode, "PRAGMA journal_mode"))
	assert.Equal(t, "wal", journalMode)

	var busyTimeout int
	require.NoError(t, db.Get(&busyTimeout, "PRAGMA busy_timeout"))
	assert.Equal(t, 5000, busyTimeout)

	var foreignKeys int
	require.NoError(t, db.Get(&foreignKeys, "PRAGMA foreign_keys"))
	assert.Equal(t, 1, foreignKeys)
}

func TestOpen_MissingParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "ideas.db")

	_, err := ideastore.Open(path)
	require.Error(t, err)

	db, err := ideastore.Open(path, ideastore.WithMkdirAll())
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := ideastore.Open(filepath.Join(t.TempDir(), "ideas.db"), ideastore.WithDriver("no-such-driver"))
	assert.Error(t, err)
}

func TestOpenMemory_IsolatedDatabases(t *testing.T) {
	db1 := ideastore.OpenMemory(t)
	db2 := ideastore.OpenMemory(t)

	_, err := db1.Exec(`CREATE TABLE marker (n INTEGER)`)
	require.NoError(t, err)

	var name string
	err = db2.Get(&name, `SELECT name FROM sqlite_master WHERE name = 'marker'`)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

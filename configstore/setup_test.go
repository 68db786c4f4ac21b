package configstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomoos/prismq-idea/configstore"
)

func TestSetup_SeedsDefaults(t *testing.T) {
	dir := t.TempDir()

	store, err := configstore.Setup(dir, "prismq-idea", nil)
	require.NoError(t, err)

	assert.Equal(t, "prismq-idea", store.GetDefault(configstore.KeyAppName, ""))
	assert.Equal(t, store.Dir(), store.GetDefault(configstore.KeyWorkingDir, ""))
	assert.Equal(t,
		filepath.Join(store.Dir(), configstore.DefaultDatabaseFile),
		store.GetDefault(configstore.KeyDatabasePath, ""),
	)

	_, statErr := os.Stat(store.Path())
	assert.NoError(t, statErr, "configuration file should exist")
}

func TestSetup_PreservesExistingValues(t *testing.T) {
	dir := t.TempDir()

	seeded, err := configstore.New(dir)
	require.NoError(t, err)
	require.NoError(t, seeded.Set(configstore.KeyDatabasePath, "/srv/shared/ideas.db"))

	store, err := configstore.Setup(dir, "prismq-idea", nil)
	require.NoError(t, err)

	assert.Equal(t, "/srv/shared/ideas.db", store.GetDefault(configstore.KeyDatabasePath, ""),
		"existing keys must not be overwritten")
	assert.Equal(t, "prismq-idea", store.GetDefault(configstore.KeyAppName, ""))
}

func TestSetup_Idempotent(t *testing.T) {
	dir := t.TempDir()

	first, err := configstore.Setup(dir, "prismq-idea", nil)
	require.NoError(t, err)
	before, err := os.ReadFile(first.Path())
	require.NoError(t, err)

	second, err := configstore.Setup(dir, "prismq-idea", nil)
	require.NoError(t, err)
	after, err := os.ReadFile(second.Path())
	require.NoError(t, err)

	assert.Equal(t, string(before), string(after))
}

func TestSetup_CreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "workspace", "nested")

	store, err := configstore.Setup(dir, "prismq-idea", nil)
	require.NoError(t, err)

	info, statErr := os.Stat(store.Dir())
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())
}

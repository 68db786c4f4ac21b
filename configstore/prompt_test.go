package configstore_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomoos/prismq-idea/configstore"
)

func TestPromptIfMissing_ReturnsExistingValue(t *testing.T) {
	store := newStore(t, t.TempDir(),
		configstore.WithInteractive(true),
		configstore.WithInput(strings.NewReader("must not be read\n")),
		configstore.WithOutput(&bytes.Buffer{}),
	)
	require.NoError(t, store.Set("COLOR", "red"))

	got, err := store.PromptIfMissing("COLOR", "Favourite colour", "blue")
	require.NoError(t, err)
	assert.Equal(t, "red", got)
}

func TestPromptIfMissing_NonInteractiveStoresFallback(t *testing.T) {
	dir := t.TempDir()
	store := newStore(t, dir, configstore.WithInteractive(false))

	got, err := store.PromptIfMissing("COLOR", "Favourite colour", "blue")
	require.NoError(t, err)
	assert.Equal(t, "blue", got)

	fresh := newStore(t, dir)
	require.NoError(t, fresh.Load())
	assert.Equal(t, "blue", fresh.GetDefault("COLOR", ""), "fallback should be persisted")
}

func TestPromptIfMissing_NonInteractiveWithoutFallback(t *testing.T) {
	dir := t.TempDir()
	store := newStore(t, dir, configstore.WithInteractive(false))

	got, err := store.PromptIfMissing("COLOR", "Favourite colour", "")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.False(t, store.Has("COLOR"), "nothing should be stored")
}

func TestPromptIfMissing_InteractiveStoresAnswer(t *testing.T) {
	dir := t.TempDir()
	out := &bytes.Buffer{}
	store := newStore(t, dir,
		configstore.WithInteractive(true),
		configstore.WithInput(strings.NewReader("  teal  \n")),
		configstore.WithOutput(out),
	)

	got, err := store.PromptIfMissing("COLOR", "Favourite colour", "blue")
	require.NoError(t, err)
	assert.Equal(t, "teal", got, "answer should be trimmed")
	assert.Contains(t, out.String(), "Favourite colour: ")

	fresh := newStore(t, dir)
	require.NoError(t, fresh.Load())
	assert.Equal(t, "teal", fresh.GetDefault("COLOR", ""))
}

func TestPromptIfMissing_InteractiveEmptyAnswerUsesFallback(t *testing.T) {
	store := newStore(t, t.TempDir(),
		configstore.WithInteractive(true),
		configstore.WithInput(strings.NewReader("\n")),
		configstore.WithOutput(&bytes.Buffer{}),
	)

	got, err := store.PromptIfMissing("COLOR", "Favourite colour", "blue")
	require.NoError(t, err)
	assert.Equal(t, "blue", got)
	assert.True(t, store.Has("COLOR"))
}

func TestPromptIfMissing_InteractiveEmptyAnswerWithoutFallback(t *testing.T) {
	store := newStore(t, t.TempDir(),
		configstore.WithInteractive(true),
		configstore.WithInput(strings.NewReader("\n")),
		configstore.WithOutput(&bytes.Buffer{}),
	)

	got, err := store.PromptIfMissing("COLOR", "Favourite colour", "")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.False(t, store.Has("COLOR"))
}

func TestPromptIfMissing_AnswerWithoutTrailingNewline(t *testing.T) {
	store := newStore(t, t.TempDir(),
		configstore.WithInteractive(true),
		configstore.WithInput(strings.NewReader("teal")),
		configstore.WithOutput(&bytes.Buffer{}),
	)

	got, err := store.PromptIfMissing("COLOR", "Favourite colour", "")
	require.NoError(t, err)
	assert.Equal(t, "teal", got)
}

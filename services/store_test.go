package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmicclicker/game"
)

func TestLocalStoreRoundTrip(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	state := game.NewState(newFakeClock().Now())
	state.Stardust = 1234.5
	state.Username = "nova"
	require.NoError(t, store.Save("guest-abc", &state))

	loaded, err := store.Load("guest-abc")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 1234.5, loaded.Stardust)
	assert.Equal(t, "nova", loaded.Username)
}

func TestLocalStoreMissingSave(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	loaded, err := store.Load("never-saved")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestLocalStoreCorruptSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644))

	loaded, err := store.Load("broken")
	require.NoError(t, err, "a corrupt save is discarded, not fatal")
	assert.Nil(t, loaded)
}

func TestLocalStoreSanitizesScope(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	state := game.NewState(newFakeClock().Now())
	require.NoError(t, store.Save("../../etc/passwd", &state))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "hostile scopes stay inside the data directory")

	loaded, err := store.Load("../../etc/passwd")
	require.NoError(t, err)
	assert.NotNil(t, loaded)
}

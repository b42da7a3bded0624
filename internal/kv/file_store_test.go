package kv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	ctx := context.Background()

	_, found, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "chat_history", []byte(`{"conversations":[]}`)))

	data, found, err := store.Get(ctx, "chat_history")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"conversations":[]}`, string(data))

	require.NoError(t, store.Delete(ctx, "chat_history"))
	_, found, err = store.Get(ctx, "chat_history")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	ctx := context.Background()

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "user_settings", []byte(`{"theme":"purple"}`)))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	data, found, err := reopened.Get(ctx, "user_settings")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"theme":"purple"}`, string(data))
}

func TestFileStoreToleratesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0o644))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, found, err := store.Get(context.Background(), "chat_history")
	require.NoError(t, err)
	assert.False(t, found)

	// The store must be writable again after starting from a corrupt file.
	require.NoError(t, store.Set(context.Background(), "chat_history", []byte(`{}`)))
}

package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sahaara/core/internal/infrastructure/logger"
	"github.com/sahaara/core/internal/ports"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir(), logger.NewNop())
	require.NoError(t, err)
	return store
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	_, found, err := store.Get(ctx, ports.SessionKey)
	require.NoError(t, err)
	require.False(t, found)

	doc := []byte(`{"name":"Priya S."}`)
	require.NoError(t, store.Set(ctx, ports.SessionKey, doc))

	got, found, err := store.Get(ctx, ports.SessionKey)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, doc, got)
}

func TestFileStoreSetReplacesWholeDocument(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, ports.UserTasksKey, []byte(`[1,2,3]`)))
	require.NoError(t, store.Set(ctx, ports.UserTasksKey, []byte(`[4]`)))

	got, found, err := store.Get(ctx, ports.UserTasksKey)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []byte(`[4]`), got)
}

func TestFileStoreDelete(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, ports.SessionKey, []byte(`{}`)))
	require.NoError(t, store.Delete(ctx, ports.SessionKey))

	_, found, err := store.Get(ctx, ports.SessionKey)
	require.NoError(t, err)
	require.False(t, found)

	// Deleting an absent key is not an error.
	require.NoError(t, store.Delete(ctx, ports.SessionKey))
}

func TestFileStoreWatchSeesExternalWrite(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, logger.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := store.Watch(ctx)
	require.NoError(t, err)

	// Simulate another process writing the task list document directly.
	require.NoError(t, os.WriteFile(filepath.Join(dir, ports.UserTasksKey+".json"), []byte(`[]`), 0o644))

	select {
	case key := <-changes:
		require.Equal(t, ports.UserTasksKey, key)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a change event for the task list document")
	}
}

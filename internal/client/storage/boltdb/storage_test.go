package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solmax/tgshop/internal/client/storage"
)

// createTestStorage создает временное BoltDB хранилище и инициализирует buckets
func createTestStorage(t *testing.T) (*Storage, func()) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "tgshop_test.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		require.NoError(t, store.Close())
		require.NoError(t, os.RemoveAll(tmpDir))
	}

	return store, cleanup
}

func TestNew_CreatesBuckets(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	// Buckets должны существовать сразу после открытия: пустая корзина
	// читается как ErrCartNotFound, а не как ошибка отсутствия bucket
	_, err := store.LoadCart(context.Background())
	assert.ErrorIs(t, err, storage.ErrCartNotFound)
}

func TestNew_InvalidPath(t *testing.T) {
	ctx := context.Background()
	_, err := New(ctx, filepath.Join("/nonexistent-dir", "db"))
	require.Error(t, err)
}

func TestClose_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "tgshop_test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	require.NoError(t, store.Close())

	// Повторное закрытие nil-безопасно
	empty := &Storage{}
	require.NoError(t, empty.Close())
}

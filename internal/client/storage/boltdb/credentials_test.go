package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solmax/tgshop/internal/client/storage"
)

func TestSaveGetDeleteCredential(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	cred := &storage.Credential{
		Ciphertext: "b64-ciphertext",
		Salt:       "b64-salt",
	}

	err := store.SaveCredential(ctx, cred)
	require.NoError(t, err)

	got, err := store.GetCredential(ctx)
	require.NoError(t, err)
	assert.Equal(t, cred.Ciphertext, got.Ciphertext)
	assert.Equal(t, cred.Salt, got.Salt)

	err = store.DeleteCredential(ctx)
	require.NoError(t, err)

	_, err = store.GetCredential(ctx)
	assert.ErrorIs(t, err, storage.ErrCredentialNotFound)
}

func TestGetCredential_NotFound(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	_, err := store.GetCredential(ctx)
	assert.ErrorIs(t, err, storage.ErrCredentialNotFound)
}

func TestDeleteCredential_NotFound(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	err := store.DeleteCredential(ctx)
	assert.ErrorIs(t, err, storage.ErrCredentialNotFound)
}

func TestSaveCredential_Overwrites(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.NoError(t, store.SaveCredential(ctx, &storage.Credential{Ciphertext: "old"}))
	require.NoError(t, store.SaveCredential(ctx, &storage.Credential{Ciphertext: "new"}))

	got, err := store.GetCredential(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Ciphertext)
}

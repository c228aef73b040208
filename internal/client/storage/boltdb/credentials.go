package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/solmax/tgshop/internal/client/storage"
)

var credentialKey = []byte("admin-credential")

// SaveCredential stores the encrypted admin credential
func (s *Storage) SaveCredential(ctx context.Context, cred *storage.Credential) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data, err := json.Marshal(cred)
		if err != nil {
			return fmt.Errorf("failed to marshal credential: %w", err)
		}

		if err := bucket.Put(credentialKey, data); err != nil {
			return fmt.Errorf("failed to save credential: %w", err)
		}

		return nil
	})
}

// GetCredential retrieves the encrypted admin credential
func (s *Storage) GetCredential(ctx context.Context) (*storage.Credential, error) {
	var cred *storage.Credential

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data := bucket.Get(credentialKey)
		if data == nil {
			return storage.ErrCredentialNotFound
		}

		cred = &storage.Credential{}
		if err := json.Unmarshal(data, cred); err != nil {
			return fmt.Errorf("failed to unmarshal credential: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return cred, nil
}

// DeleteCredential removes the cached credential (logout / auth expired)
func (s *Storage) DeleteCredential(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if bucket.Get(credentialKey) == nil {
			return storage.ErrCredentialNotFound
		}

		if err := bucket.Delete(credentialKey); err != nil {
			return fmt.Errorf("failed to delete credential: %w", err)
		}

		return nil
	})
}

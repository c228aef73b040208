package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/solmax/tgshop/internal/client/storage"
)

// Корзина хранится одним ключом: JSON-карта "составной ключ → количество".
// Ровно то, что уходило в localStorage под единственным ключом.
var cartKey = []byte("current")

// SaveCart atomically replaces the persisted quantity map
func (s *Storage) SaveCart(ctx context.Context, quantities map[string]int) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCart)
		if bucket == nil {
			return fmt.Errorf("cart bucket not found")
		}

		// Сериализуем карту в JSON
		data, err := json.Marshal(quantities)
		if err != nil {
			return fmt.Errorf("failed to marshal cart: %w", err)
		}

		if err := bucket.Put(cartKey, data); err != nil {
			return fmt.Errorf("failed to save cart: %w", err)
		}

		return nil
	})
}

// LoadCart returns the persisted quantity map
func (s *Storage) LoadCart(ctx context.Context) (map[string]int, error) {
	var quantities map[string]int

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCart)
		if bucket == nil {
			return fmt.Errorf("cart bucket not found")
		}

		data := bucket.Get(cartKey)
		if data == nil {
			return storage.ErrCartNotFound
		}

		quantities = make(map[string]int)
		if err := json.Unmarshal(data, &quantities); err != nil {
			return fmt.Errorf("failed to unmarshal cart: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return quantities, nil
}

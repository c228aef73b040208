package storage

import "context"

//go:generate moq -out cart_mock.go . CartStorage

// CartStorage defines interface for persisting the cart on the client.
// В durable storage уходит только карта "составной ключ → количество":
// объекты товара/варианта никогда не сериализуются, только их ключи.
type CartStorage interface {
	// SaveCart atomically replaces the persisted quantity map
	SaveCart(ctx context.Context, quantities map[string]int) error

	// LoadCart returns the persisted quantity map
	// Returns ErrCartNotFound if no cart has been saved yet
	LoadCart(ctx context.Context) (map[string]int, error)
}

package storage

import "errors"

// Common client storage errors
var (
	// ErrCartNotFound indicates that no cart has been persisted yet
	ErrCartNotFound = errors.New("cart not found")

	// ErrCredentialNotFound indicates that no admin credential is cached
	ErrCredentialNotFound = errors.New("admin credential not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)

package storage

import "context"

//go:generate moq -out credentials_mock.go . CredentialStorage

// CredentialStorage defines interface for the cached admin credential.
// This is the lowest storage layer - it works with raw data (the password is
// already encrypted) and doesn't perform any encryption/decryption itself.
// Шифрование/дешифрование живет уровнем выше, в auth.Service.
type CredentialStorage interface {
	// SaveCredential stores the encrypted admin credential as-is
	SaveCredential(ctx context.Context, cred *Credential) error

	// GetCredential retrieves the encrypted admin credential as-is
	// Returns ErrCredentialNotFound if nothing is cached
	GetCredential(ctx context.Context) (*Credential, error)

	// DeleteCredential removes the cached credential (logout / auth expired)
	DeleteCredential(ctx context.Context) error
}

// Credential represents the cached admin credential in storage.
// Ciphertext — пароль, зашифрованный AES-GCM ключом, производным от initData
// текущей Telegram-сессии, поэтому кеш умирает вместе с сессией.
type Credential struct {
	Ciphertext string `json:"ciphertext"` // base64(nonce + ciphertext + tag)
	Salt       string `json:"salt"`       // base64 соль деривации ключа
}

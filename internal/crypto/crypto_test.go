package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testInitData = "query_id=AAH&user=%7B%22id%22%3A42%7D&auth_date=1700000000&hash=deadbeef"

func TestDeriveSessionKey(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	key, err := DeriveSessionKey(testInitData, salt)
	require.NoError(t, err)
	assert.Len(t, key, Argon2KeyLen)

	// деривация детерминирована
	again, err := DeriveSessionKey(testInitData, salt)
	require.NoError(t, err)
	assert.Equal(t, key, again)

	// другая сессия — другой ключ
	otherSalt, err := GenerateSalt()
	require.NoError(t, err)
	other, err := DeriveSessionKey(testInitData, otherSalt)
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}

func TestDeriveSessionKey_Errors(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	_, err = DeriveSessionKey("", salt)
	require.Error(t, err)

	_, err = DeriveSessionKey(testInitData, []byte("short"))
	require.Error(t, err)
}

func TestEncryptDecrypt(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	key, err := DeriveSessionKey(testInitData, salt)
	require.NoError(t, err)

	plaintext := []byte("admin-password-123")

	encrypted, err := Encrypt(plaintext, key)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, encrypted)

	decrypted, err := Decrypt(encrypted, key)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestDecrypt_WrongKeyFails(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	key, err := DeriveSessionKey(testInitData, salt)
	require.NoError(t, err)

	encrypted, err := Encrypt([]byte("secret"), key)
	require.NoError(t, err)

	// initData следующей сессии не расшифрует кеш прошлой
	otherKey, err := DeriveSessionKey("other-session", salt)
	require.NoError(t, err)

	_, err = Decrypt(encrypted, otherKey)
	require.Error(t, err)
}

func TestDecrypt_Tampered(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	key, err := DeriveSessionKey(testInitData, salt)
	require.NoError(t, err)

	encrypted, err := Encrypt([]byte("secret"), key)
	require.NoError(t, err)
	encrypted[len(encrypted)-1] ^= 0xFF

	_, err = Decrypt(encrypted, key)
	require.Error(t, err)
}

func TestBase64RoundTrip(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	key, err := DeriveSessionKey(testInitData, salt)
	require.NoError(t, err)

	encoded, err := EncryptToBase64([]byte("secret"), key)
	require.NoError(t, err)

	decrypted, err := DecryptFromBase64(encoded, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), decrypted)

	_, err = DecryptFromBase64("%%% not base64", key)
	require.Error(t, err)
}

func TestEncrypt_Errors(t *testing.T) {
	key := make([]byte, Argon2KeyLen)

	_, err := Encrypt(nil, key)
	require.Error(t, err)

	_, err = Encrypt([]byte("data"), []byte("short key"))
	require.Error(t, err)

	_, err = Decrypt([]byte("tiny"), key)
	require.Error(t, err)
}

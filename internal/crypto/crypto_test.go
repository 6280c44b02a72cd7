package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	salt, err := GenerateSalt()
	require.NoError(t, err)
	key, err := DeriveStorageKey("device-passphrase", salt)
	require.NoError(t, err)
	return key
}

func TestEncryptDecrypt(t *testing.T) {
	key := testKey(t)
	plaintext := []byte("bearer-token-value")

	encrypted, err := Encrypt(plaintext, key)
	require.NoError(t, err)
	assert.False(t, bytes.Contains(encrypted, plaintext))

	decrypted, err := Decrypt(encrypted, key)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestEncrypt_Errors(t *testing.T) {
	_, err := Encrypt(nil, make([]byte, KeySize))
	assert.Error(t, err)

	_, err = Encrypt([]byte("data"), make([]byte, 16))
	assert.ErrorContains(t, err, "encryption key must be 32 bytes")
}

func TestDecrypt_WrongKey(t *testing.T) {
	encrypted, err := Encrypt([]byte("data"), testKey(t))
	require.NoError(t, err)

	_, err = Decrypt(encrypted, testKey(t))
	assert.ErrorContains(t, err, "authentication failed")

	_, err = Decrypt([]byte("short"), testKey(t))
	assert.ErrorContains(t, err, "too short")
}

func TestEncryptString_RoundTrip(t *testing.T) {
	key := testKey(t)

	encoded, err := EncryptString("token-123", key)
	require.NoError(t, err)
	assert.NotEqual(t, "token-123", encoded)

	decoded, err := DecryptString(encoded, key)
	require.NoError(t, err)
	assert.Equal(t, "token-123", decoded)

	_, err = DecryptString("%%%not-base64", key)
	assert.ErrorContains(t, err, "failed to decode base64")
}

func TestDeriveStorageKey(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	k1, err := DeriveStorageKey("passphrase", salt)
	require.NoError(t, err)
	k2, err := DeriveStorageKey("passphrase", salt)
	require.NoError(t, err)
	assert.Len(t, k1, KeySize)
	assert.Equal(t, k1, k2, "derivation must be deterministic")

	other, err := DeriveStorageKey("other", salt)
	require.NoError(t, err)
	assert.NotEqual(t, k1, other)

	_, err = DeriveStorageKey("", salt)
	assert.Error(t, err)

	_, err = DeriveStorageKey("passphrase", salt[:4])
	assert.ErrorContains(t, err, "salt must be 32 bytes")
}

package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey() string {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	return hex.EncodeToString(key)
}

func TestEncryptor_EncryptDecrypt(t *testing.T) {
	enc, err := NewEncryptor(testKey(), "mission-control-storage")
	require.NoError(t, err)

	plaintext := []byte(`{"state":{"tasks":[]},"version":0}`)

	ciphertext, err := enc.Encrypt(plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, ciphertext)
	assert.Greater(t, len(ciphertext), len(plaintext))

	decrypted, err := enc.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestEncryptor_FreshNonceEachTime(t *testing.T) {
	enc, err := NewEncryptor(testKey(), "ns")
	require.NoError(t, err)

	a, err := enc.Encrypt([]byte("same"))
	require.NoError(t, err)
	b, err := enc.Encrypt([]byte("same"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestEncryptor_WrongNamespaceFails(t *testing.T) {
	enc, err := NewEncryptor(testKey(), "one")
	require.NoError(t, err)
	other, err := NewEncryptor(testKey(), "two")
	require.NoError(t, err)

	ciphertext, err := enc.Encrypt([]byte("secret"))
	require.NoError(t, err)

	_, err = other.Decrypt(ciphertext)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestEncryptor_WrongKeyFails(t *testing.T) {
	enc, err := NewEncryptor(testKey(), "ns")
	require.NoError(t, err)
	otherKey, err := GenerateKey()
	require.NoError(t, err)
	other, err := NewEncryptor(otherKey, "ns")
	require.NoError(t, err)

	ciphertext, err := enc.Encrypt([]byte("secret"))
	require.NoError(t, err)

	_, err = other.Decrypt(ciphertext)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestEncryptor_ShortCiphertext(t *testing.T) {
	enc, err := NewEncryptor(testKey(), "ns")
	require.NoError(t, err)

	_, err = enc.Decrypt([]byte("short"))
	assert.ErrorIs(t, err, ErrCiphertextTooShort)
}

func TestNewEncryptor_InvalidKey(t *testing.T) {
	tests := []string{"", "abcd", "zz" + testKey()[2:], testKey() + "00"}
	for _, key := range tests {
		_, err := NewEncryptor(key, "ns")
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
	}
}

func TestGenerateKey(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	assert.Len(t, key, 64)

	_, err = NewEncryptor(key, "ns")
	assert.NoError(t, err)
}

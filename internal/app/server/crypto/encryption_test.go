package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldCipher_RoundTrip(t *testing.T) {
	c, err := NewFieldCipher("", "test-passphrase")
	require.NoError(t, err)

	plaintexts := []string{
		"hunter2",
		"a much longer secret with spaces and symbols !@#$%",
		"пароль",
	}

	for _, p := range plaintexts {
		encrypted, err := c.EncryptField(p)
		require.NoError(t, err)
		assert.NotEqual(t, p, encrypted)

		decrypted, err := c.DecryptField(encrypted)
		require.NoError(t, err)
		assert.Equal(t, p, decrypted)
	}
}

func TestFieldCipher_EmptyShortCircuit(t *testing.T) {
	c, err := NewFieldCipher("", "test-passphrase")
	require.NoError(t, err)

	encrypted, err := c.EncryptField("")
	require.NoError(t, err)
	assert.Equal(t, "", encrypted)

	decrypted, err := c.DecryptField("")
	require.NoError(t, err)
	assert.Equal(t, "", decrypted)
}

func TestFieldCipher_NonDeterministic(t *testing.T) {
	c, err := NewFieldCipher("", "test-passphrase")
	require.NoError(t, err)

	first, err := c.EncryptField("same input")
	require.NoError(t, err)
	second, err := c.EncryptField("same input")
	require.NoError(t, err)

	// Random nonce per call: identical plaintexts must not share ciphertext.
	assert.NotEqual(t, first, second)
}

func TestFieldCipher_WrongKey(t *testing.T) {
	c1, err := NewFieldCipher("", "passphrase-one")
	require.NoError(t, err)
	c2, err := NewFieldCipher("", "passphrase-two")
	require.NoError(t, err)

	encrypted, err := c1.EncryptField("secret")
	require.NoError(t, err)

	_, err = c2.DecryptField(encrypted)
	assert.Error(t, err)
}

func TestFieldCipher_CorruptCiphertext(t *testing.T) {
	c, err := NewFieldCipher("", "test-passphrase")
	require.NoError(t, err)

	_, err = c.DecryptField("not-hex")
	assert.Error(t, err)

	_, err = c.DecryptField("abcd")
	assert.Error(t, err)
}

func TestNewFieldCipher_HexKey(t *testing.T) {
	// 32 bytes, hex-encoded.
	keyHex := "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
	c, err := NewFieldCipher(keyHex, "")
	require.NoError(t, err)

	encrypted, err := c.EncryptField("secret")
	require.NoError(t, err)
	decrypted, err := c.DecryptField(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "secret", decrypted)
}

func TestNewFieldCipher_BadHexKey(t *testing.T) {
	_, err := NewFieldCipher("zz", "")
	assert.Error(t, err)

	_, err = NewFieldCipher("abcd", "")
	assert.Error(t, err)
}

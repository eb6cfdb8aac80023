package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
)

// FieldCipher encrypts individual document fields at rest with a single
// deployment-wide AES-256-GCM key.
// NOTE: this is NOT zero-knowledge encryption; the server holds the key.
type FieldCipher struct {
	key []byte
}

// NewFieldCipher builds a cipher from a hex-encoded 32-byte key. When keyHex
// is empty the key is derived from passphrase via SHA-256.
func NewFieldCipher(keyHex, passphrase string) (*FieldCipher, error) {
	var key []byte

	if keyHex != "" {
		var err error
		key, err = hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			return nil, fmt.Errorf("invalid cipher key (must be 32 bytes hex)")
		}
	} else {
		if passphrase == "" {
			passphrase = "default-server-passphrase-change-in-production"
		}
		hash := sha256.Sum256([]byte(passphrase))
		key = hash[:]
	}

	return &FieldCipher{key: key}, nil
}

// EncryptField encrypts a single string field. The empty string round-trips
// to the empty string without touching the cipher, so absent fields stay
// absent in the database.
func (c *FieldCipher) EncryptField(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create GCM: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(ciphertext), nil
}

// DecryptField reverses EncryptField. Corrupt ciphertext or a wrong key
// yields an error; callers degrade the field rather than failing the read.
func (c *FieldCipher) DecryptField(ciphertextHex string) (string, error) {
	if ciphertextHex == "" {
		return "", nil
	}

	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return "", fmt.Errorf("decode hex: %w", err)
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create GCM: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}

	nonce, sealed := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("decrypt: %w", err)
	}

	return string(plaintext), nil
}

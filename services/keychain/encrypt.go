package keychain

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

var (
	InvalidEncryptionKey = fmt.Errorf("The encryption key must not be empty.")
	DecryptionFailed     = fmt.Errorf("Could not decrypt the stored secret, it may have been written with a different key.")
)

// encryptor seals portal secrets with AES-256-GCM before they touch
// the database. The key is either a base64 encoded 32 byte key or an
// arbitrary passphrase hashed down to one.
type encryptor struct {
	gcm cipher.AEAD
}

func newEncryptor(keyInput string) (encryptor, error) {
	if keyInput == "" {
		return encryptor{}, InvalidEncryptionKey
	}

	var key []byte
	decoded, err := base64.StdEncoding.DecodeString(keyInput)
	if err == nil && len(decoded) == 32 {
		key = decoded
	} else {
		hash := sha256.Sum256([]byte(keyInput))
		key = hash[:]
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return encryptor{}, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return encryptor{}, fmt.Errorf("create gcm: %w", err)
	}
	return encryptor{gcm: gcm}, nil
}

// encrypt returns base64(nonce || ciphertext || tag). The empty
// string passes through so an unset secret stays visibly unset.
func (e encryptor) encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}
	nonce := make([]byte, e.gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	sealed := e.gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (e encryptor) decrypt(encrypted string) (string, error) {
	if encrypted == "" {
		return "", nil
	}
	data, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return "", fmt.Errorf("%w (bad base64)", DecryptionFailed)
	}
	nonceSize := e.gcm.NonceSize()
	if len(data) < nonceSize+e.gcm.Overhead() {
		return "", fmt.Errorf("%w (too short)", DecryptionFailed)
	}
	nonce, ciphertext := data[:nonceSize], data[nonceSize:]
	plaintext, err := e.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", DecryptionFailed
	}
	return string(plaintext), nil
}

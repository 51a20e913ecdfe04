// Package securefile seals small JSON documents into passphrase-protected
// containers for at-rest storage.
//
// A container is itself JSON: a format version plus base64 salt, nonce and
// ciphertext. The key is derived from the passphrase with Argon2id and the
// payload is encrypted with XChaCha20-Poly1305. Each Seal draws a fresh
// salt and nonce, so sealing the same document twice never produces the
// same bytes.
package securefile

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// Version is the container format version written by Seal.
const Version = 1

// Argon2id parameters (RFC 9106 low-memory recommendation).
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4

	keySize  = chacha20poly1305.KeySize
	saltSize = 16
)

var (
	// ErrEmptyPassphrase is returned when the passphrase is empty.
	ErrEmptyPassphrase = errors.New("passphrase must not be empty")

	// ErrDecryptFailed is returned when the passphrase is wrong or the
	// container has been tampered with.
	ErrDecryptFailed = errors.New("decryption failed")

	// ErrInvalidContainer is returned when the container structure cannot
	// be parsed.
	ErrInvalidContainer = errors.New("invalid container")
)

type container struct {
	Version int    `json:"version"`
	Salt    string `json:"salt"`
	Nonce   string `json:"nonce"`
	Data    string `json:"data"`
}

// Seal encrypts plaintext under passphrase and returns the container
// bytes.
func Seal(plaintext, passphrase []byte) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, ErrEmptyPassphrase
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	aead, err := newAEAD(passphrase, salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	sealed := aead.Seal(nil, nonce, plaintext, nil)

	return json.Marshal(container{
		Version: Version,
		Salt:    base64.StdEncoding.EncodeToString(salt),
		Nonce:   base64.StdEncoding.EncodeToString(nonce),
		Data:    base64.StdEncoding.EncodeToString(sealed),
	})
}

// Open decrypts a container produced by Seal.
func Open(data, passphrase []byte) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, ErrEmptyPassphrase
	}

	var c container
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContainer, err)
	}
	if c.Version != Version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidContainer, c.Version)
	}

	salt, err := base64.StdEncoding.DecodeString(c.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed salt", ErrInvalidContainer)
	}
	if len(salt) != saltSize {
		return nil, fmt.Errorf("%w: salt size got %d, want %d", ErrInvalidContainer, len(salt), saltSize)
	}

	nonce, err := base64.StdEncoding.DecodeString(c.Nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed nonce", ErrInvalidContainer)
	}

	sealed, err := base64.StdEncoding.DecodeString(c.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed data", ErrInvalidContainer)
	}

	aead, err := newAEAD(passphrase, salt)
	if err != nil {
		return nil, err
	}
	if len(nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("%w: nonce size got %d, want %d", ErrInvalidContainer, len(nonce), aead.NonceSize())
	}

	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	return plaintext, nil
}

func newAEAD(passphrase, salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey(passphrase, salt, argonTime, argonMemory, argonThreads, keySize)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	return aead, nil
}

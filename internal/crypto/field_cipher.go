package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

// DecryptionFailedSentinel is returned by [FieldCipher.Decrypt] in place of
// the plaintext whenever a ciphertext cannot be decoded or fails its
// integrity check. Callers propagate it upward as the field value so that a
// single corrupted record degrades gracefully instead of failing the read.
const DecryptionFailedSentinel = "[decryption failed]"

// keySize is the required field-cipher key length: 32 bytes for AES-256.
const keySize = 32

// ErrInvalidCipherKey is returned by [NewFieldCipher] when the configured key
// is not a URL-safe base64 encoding of exactly 32 bytes.
var ErrInvalidCipherKey = errors.New("field cipher key must be 32 url-safe base64-encoded bytes")

// fieldCipher is the AES-256-GCM implementation of [FieldCipher].
//
// The AEAD instance is built once at construction and is read-only
// afterwards, so the type is safe for concurrent use.
type fieldCipher struct {
	aead cipher.AEAD
}

// NewFieldCipher constructs a [FieldCipher] from a URL-safe base64-encoded
// 32-byte key, as supplied by the configuration source. The key never changes
// during the process lifetime.
//
// Returns [ErrInvalidCipherKey] if the key cannot be decoded or has the wrong
// length, or a wrapped error if the AES-GCM construction fails.
func NewFieldCipher(encodedKey string) (FieldCipher, error) {
	key, err := decodeKey(encodedKey)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &fieldCipher{aead: aead}, nil
}

// decodeKey accepts both padded and unpadded URL-safe base64 key encodings
// and enforces the 32-byte length requirement.
func decodeKey(encodedKey string) ([]byte, error) {
	key, err := base64.URLEncoding.DecodeString(encodedKey)
	if err != nil {
		key, err = base64.RawURLEncoding.DecodeString(encodedKey)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCipherKey, err)
	}

	if len(key) != keySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidCipherKey, len(key))
	}

	return key, nil
}

// Encrypt implements [FieldCipher]. It encrypts plaintext with AES-256-GCM
// under a fresh random nonce and returns the URL-safe base64 encoding of the
// blob: nonce (12 bytes) ‖ ciphertext. The random nonce makes the output
// non-deterministic: encrypting the same plaintext twice yields different
// ciphertext.
//
// The empty string is a no-op and maps to the empty string.
func (f *fieldCipher) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, f.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// Prepend the nonce so Decrypt can split it back out.
	blob := f.aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.RawURLEncoding.EncodeToString(blob), nil
}

// Decrypt implements [FieldCipher]. It decodes the blob produced by Encrypt,
// splits out the nonce, and decrypts the remainder.
//
// Decrypt never fails to the caller: a base64 decode error, a truncated blob,
// or an authentication-tag mismatch (wrong key, foreign or corrupted
// ciphertext) all yield [DecryptionFailedSentinel]. The empty string maps to
// the empty string.
func (f *fieldCipher) Decrypt(ciphertext string) string {
	if ciphertext == "" {
		return ""
	}

	blob, err := base64.RawURLEncoding.DecodeString(ciphertext)
	if err != nil {
		return DecryptionFailedSentinel
	}

	nonceSize := f.aead.NonceSize()
	if len(blob) < nonceSize {
		return DecryptionFailedSentinel
	}

	nonce, sealed := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := f.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return DecryptionFailedSentinel
	}

	return string(plaintext)
}

// GenerateCipherKey produces a fresh random 32-byte key in the URL-safe
// base64 encoding accepted by [NewFieldCipher]. Intended for provisioning
// tooling; the running service only ever consumes a configured key.
func GenerateCipherKey() (string, error) {
	key := make([]byte, keySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(key), nil
}

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"
)

func newTestCipher(t *testing.T) FieldCipher {
	t.Helper()

	key, err := GenerateCipherKey()
	if err != nil {
		t.Fatalf("GenerateCipherKey error: %v", err)
	}

	c, err := NewFieldCipher(key)
	if err != nil {
		t.Fatalf("NewFieldCipher error: %v", err)
	}

	return c
}

func TestNewFieldCipher_AcceptsPaddedAndRawKeys(t *testing.T) {
	raw := make([]byte, keySize)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		t.Fatalf("rand error: %v", err)
	}

	if _, err := NewFieldCipher(base64.URLEncoding.EncodeToString(raw)); err != nil {
		t.Fatalf("padded key rejected: %v", err)
	}
	if _, err := NewFieldCipher(base64.RawURLEncoding.EncodeToString(raw)); err != nil {
		t.Fatalf("raw key rejected: %v", err)
	}
}

func TestNewFieldCipher_RejectsBadKeys(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "empty", key: ""},
		{name: "not base64", key: "!!!not-base64!!!"},
		{name: "too short", key: base64.RawURLEncoding.EncodeToString(make([]byte, 16))},
		{name: "too long", key: base64.RawURLEncoding.EncodeToString(make([]byte, 48))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFieldCipher(tt.key)
			if !errors.Is(err, ErrInvalidCipherKey) {
				t.Fatalf("expected ErrInvalidCipherKey, got %v", err)
			}
		})
	}
}

func TestFieldCipher_EncryptDecrypt_RoundTrip(t *testing.T) {
	c := newTestCipher(t)

	plaintexts := []string{
		"Ivanov Ivan",
		"AB-1234-CD",
		"名前テスト",
		strings.Repeat("long plate value ", 100),
	}

	for _, plaintext := range plaintexts {
		ciphertext, err := c.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt(%q) error: %v", plaintext, err)
		}
		if ciphertext == plaintext {
			t.Fatalf("ciphertext equals plaintext for %q", plaintext)
		}

		if got := c.Decrypt(ciphertext); got != plaintext {
			t.Fatalf("Decrypt round-trip = %q, want %q", got, plaintext)
		}
	}
}

func TestFieldCipher_EmptyStringIsNoOp(t *testing.T) {
	c := newTestCipher(t)

	ciphertext, err := c.Encrypt("")
	if err != nil {
		t.Fatalf("Encrypt(\"\") error: %v", err)
	}
	if ciphertext != "" {
		t.Fatalf("Encrypt(\"\") = %q, want empty string", ciphertext)
	}

	if got := c.Decrypt(""); got != "" {
		t.Fatalf("Decrypt(\"\") = %q, want empty string", got)
	}
}

func TestFieldCipher_Encrypt_NonDeterministic(t *testing.T) {
	c := newTestCipher(t)

	ct1, err := c.Encrypt("same plaintext")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	ct2, err := c.Encrypt("same plaintext")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if ct1 == ct2 {
		t.Fatal("expected two encryptions of the same plaintext to differ")
	}

	// Both still decrypt to the original.
	if got := c.Decrypt(ct1); got != "same plaintext" {
		t.Fatalf("Decrypt(ct1) = %q", got)
	}
	if got := c.Decrypt(ct2); got != "same plaintext" {
		t.Fatalf("Decrypt(ct2) = %q", got)
	}
}

func TestFieldCipher_Decrypt_SentinelOnGarbage(t *testing.T) {
	c := newTestCipher(t)

	tests := []struct {
		name       string
		ciphertext string
	}{
		{name: "not base64", ciphertext: "%%%not-base64%%%"},
		{name: "too short for nonce", ciphertext: base64.RawURLEncoding.EncodeToString([]byte("tiny"))},
		{name: "random bytes", ciphertext: base64.RawURLEncoding.EncodeToString(make([]byte, 64))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Decrypt(tt.ciphertext); got != DecryptionFailedSentinel {
				t.Fatalf("Decrypt = %q, want sentinel %q", got, DecryptionFailedSentinel)
			}
		})
	}
}

func TestFieldCipher_Decrypt_SentinelOnForeignKey(t *testing.T) {
	c1 := newTestCipher(t)
	c2 := newTestCipher(t)

	ciphertext, err := c1.Encrypt("secret client name")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if got := c2.Decrypt(ciphertext); got != DecryptionFailedSentinel {
		t.Fatalf("Decrypt under foreign key = %q, want sentinel", got)
	}
}

func TestFieldCipher_Decrypt_SentinelOnTamperedCiphertext(t *testing.T) {
	c := newTestCipher(t)

	ciphertext, err := c.Encrypt("secret client name")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	blob, err := base64.RawURLEncoding.DecodeString(ciphertext)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	blob[len(blob)-1] ^= 0xFF

	tampered := base64.RawURLEncoding.EncodeToString(blob)
	if got := c.Decrypt(tampered); got != DecryptionFailedSentinel {
		t.Fatalf("Decrypt of tampered blob = %q, want sentinel", got)
	}
}

func TestGenerateCipherKey_ProducesValidRandomKeys(t *testing.T) {
	k1, err := GenerateCipherKey()
	if err != nil {
		t.Fatalf("GenerateCipherKey error: %v", err)
	}
	k2, err := GenerateCipherKey()
	if err != nil {
		t.Fatalf("GenerateCipherKey error: %v", err)
	}

	if k1 == k2 {
		t.Fatal("expected generated keys to differ")
	}

	if _, err := NewFieldCipher(k1); err != nil {
		t.Fatalf("generated key rejected by NewFieldCipher: %v", err)
	}
}

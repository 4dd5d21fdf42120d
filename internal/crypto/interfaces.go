// Package crypto implements the cryptographic core of the application:
// the field cipher protecting PII columns at rest and the credential vault
// hashing agent passwords.
//
// The field-cipher key is the system's root of trust: compromise of the key
// compromises all stored names and plates across all tenants.
package crypto

// FieldCipher performs symmetric, authenticated encryption of individual
// free-text PII fields using a single process-wide key.
//
// Implementations must be non-deterministic: encrypting the same plaintext
// twice must yield different ciphertext. Decryption must never panic or
// return an error to the caller; any integrity or format failure degrades to
// the [DecryptionFailedSentinel] placeholder so that one corrupted record
// does not abort a full listing.
type FieldCipher interface {
	// Encrypt returns the ciphertext of plaintext. The empty string maps to
	// the empty string without touching the cipher.
	Encrypt(plaintext string) (string, error)

	// Decrypt returns the plaintext of ciphertext, the empty string for
	// empty input, or [DecryptionFailedSentinel] on any failure.
	Decrypt(ciphertext string) string
}

// CredentialVault derives and verifies one-way password hashes.
// No plaintext password is ever persisted or logged.
type CredentialVault interface {
	// HashPassword returns a salted one-way hash of password suitable for
	// storage. A fresh random salt is used on every call.
	HashPassword(password string) (string, error)

	// VerifyPassword reports whether password matches the stored hash.
	// The comparison is constant-time with respect to the hash.
	VerifyPassword(password, hash string) bool
}

package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong is returned by [CredentialVault.HashPassword] when the
// password exceeds bcrypt's 72-byte input limit.
var ErrPasswordTooLong = errors.New("password is too long")

// credentialVault is the bcrypt implementation of [CredentialVault].
type credentialVault struct {
	cost int
}

// NewCredentialVault constructs a [CredentialVault] using bcrypt with the
// default work factor. bcrypt embeds a per-hash random salt in its output,
// so no separate salt storage is needed.
func NewCredentialVault() CredentialVault {
	return &credentialVault{cost: bcrypt.DefaultCost}
}

// HashPassword implements [CredentialVault].
func (v *credentialVault) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// VerifyPassword implements [CredentialVault]. bcrypt's comparison is
// constant-time with respect to the stored hash.
func (v *credentialVault) VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

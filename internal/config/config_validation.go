package config

import "encoding/base64"

// cipherKeySize is the decoded length the field-cipher key must have.
const cipherKeySize = 32

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	if !isValidCipherKey(cfg.App.CipherKey) {
		return ErrInvalidCipherKeyConfig
	}

	return nil
}

// isValidCipherKey reports whether key is a URL-safe base64 encoding
// (padded or raw) of exactly 32 bytes.
func isValidCipherKey(key string) bool {
	decoded, err := base64.URLEncoding.DecodeString(key)
	if err != nil {
		decoded, err = base64.RawURLEncoding.DecodeString(key)
	}
	if err != nil {
		return false
	}

	return len(decoded) == cipherKeySize
}

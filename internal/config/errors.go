package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing HTTP listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key, issuer, or duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidCipherKeyConfig indicates that the field-cipher key is not
	// a URL-safe base64 encoding of exactly 32 bytes.
	ErrInvalidCipherKeyConfig = errors.New("invalid field cipher key configuration")
)

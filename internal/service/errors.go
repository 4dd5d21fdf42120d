package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials deliberately collapses "no such agent" and
	// "wrong password" into one value so that the login response does not
	// reveal whether a username is registered.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the server rejects the session token
	// or the presented credentials.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrUsernameTaken is returned by Register when the username is already
	// registered on the server.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrNotFound is returned when the targeted record does not exist under
	// the authenticated agent.
	ErrNotFound = errors.New("record not found")

	// ErrBadRequest is returned when the server rejects the request payload.
	ErrBadRequest = errors.New("invalid request")

	// ErrNotLoggedIn is returned by Username when no session token is stored.
	ErrNotLoggedIn = errors.New("not logged in")
)

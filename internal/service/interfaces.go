package service

import (
	"context"

	"github.com/MrK0xGT/insurance-crm/models"
)

// AuthService covers the credential side of the system: registration, login,
// and session-token lifecycle.
type AuthService interface {
	// RegisterAgent creates a new account with a freshly salted password
	// hash. Fails with store.ErrUsernameTaken (wrapped) when the username
	// is already registered.
	RegisterAgent(ctx context.Context, username, fullName, password string) (models.Agent, error)

	// Login authenticates an agent. An unknown username and a wrong
	// password both fail with the single ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (models.Agent, error)

	// CreateToken issues a signed session JWT for the given agent.
	CreateToken(ctx context.Context, agent models.Agent) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ClientService covers the record side: tenant-scoped create, list/search,
// and delete of client records. Every method takes the owner username as an
// explicit parameter sourced from a verified authentication result, never
// from ambient state.
type ClientService interface {
	// CreateClient encrypts the PII fields of req, attaches owner, and
	// persists the record. Returns the store-assigned id.
	CreateClient(ctx context.Context, owner string, req models.CreateClientRequest) (int64, error)

	// ListClients returns owner's records sorted by expiry ascending,
	// decrypted and status-annotated, optionally narrowed by searchTerm.
	// On a store read failure the returned response still carries an empty
	// (non-nil) record set alongside the error, so callers can degrade to
	// "no data" instead of aborting.
	ListClients(ctx context.Context, owner, searchTerm string) (models.ListClientsResponse, error)

	// DeleteClient removes one record owned by owner. Fails with
	// store.ErrClientNotFound (wrapped) when no such record exists under
	// that owner.
	DeleteClient(ctx context.Context, owner string, id int64) error
}

// Package store implements the persistence layer of the application on top
// of PostgreSQL. All client-record access is tenant-scoped: the owning
// agent's username is part of every query predicate sent to the database,
// so cross-tenant rows can never leak through an in-process filter bug.
package store

import (
	"context"

	"github.com/MrK0xGT/insurance-crm/models"
)

// AgentRepository persists and looks up agent accounts.
type AgentRepository interface {
	// CreateAgent inserts a new agent account. Returns
	// [ErrUsernameTaken] when the username is already registered.
	CreateAgent(ctx context.Context, agent models.Agent) (models.Agent, error)

	// FindAgentByUsername looks up an account by its unique username.
	// Returns [ErrAgentNotFound] when no such account exists.
	FindAgentByUsername(ctx context.Context, username string) (models.Agent, error)
}

// ClientRepository persists client records. Every operation is scoped to one
// agent: reads filter by owner server-side, deletes require the owner to
// match the requester.
type ClientRepository interface {
	// CreateClient inserts one record (with ciphertext fields already
	// attached) and returns the store-assigned id.
	CreateClient(ctx context.Context, record models.ClientRecord) (int64, error)

	// GetClientsByAgent returns every record owned by username, sorted by
	// expiry date ascending. The owner filter is part of the SQL predicate.
	GetClientsByAgent(ctx context.Context, username string) ([]models.ClientRecord, error)

	// DeleteClient removes the record with the given id, provided it is
	// owned by username. Returns [ErrClientNotFound] when no such record
	// exists under that owner.
	DeleteClient(ctx context.Context, id int64, username string) error
}

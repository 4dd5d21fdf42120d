// Package adapter provides the API client used by UI layers (web, TUI, or
// tooling) to talk to the insurance-crm server. It wraps the REST transport
// behind a typed interface, keeps the session token for authenticated calls,
// and maps HTTP failure statuses onto sentinel errors.
package adapter

import (
	"context"

	"github.com/MrK0xGT/insurance-crm/models"
)

// ServerAdapter is the client-side view of the server API.
//
// All methods are synchronous and honour ctx cancellation. After a
// successful Register or Login the adapter retains the session token and
// attaches it to subsequent record operations.
type ServerAdapter interface {
	// Register creates a new agent account and stores the session token.
	Register(ctx context.Context, req models.RegisterRequest) (models.LoginResponse, error)

	// Login authenticates an agent and stores the session token.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// CreateClient stores one client record under the authenticated agent.
	CreateClient(ctx context.Context, req models.CreateClientRequest) (int64, error)

	// ListClients fetches the decrypted, status-annotated record set,
	// optionally narrowed by searchTerm.
	ListClients(ctx context.Context, searchTerm string) (models.ListClientsResponse, error)

	// DeleteClient removes one record owned by the authenticated agent.
	DeleteClient(ctx context.Context, id int64) error

	// SetToken replaces the stored session token.
	SetToken(token string)

	// Token returns the stored session token, or "" when not logged in.
	Token() string

	// Username reports which agent the stored session token belongs to,
	// for display purposes. Returns an error when no token is stored or
	// its subject cannot be read.
	Username() (string, error)
}

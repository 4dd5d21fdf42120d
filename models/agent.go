package models

import "time"

// Agent represents a sales-agent account used for authentication and as the
// tenancy boundary for client records. Sensitive fields must never be exposed
// outside trusted boundaries.
type Agent struct {
	// AgentID is the internal unique identifier of the agent.
	// It is not exposed via JSON and is used only at the persistence layer.
	AgentID int64 `json:"-"`

	// Username is the unique agent identifier. It is immutable after
	// registration and serves as the tenant partition key for all client
	// records owned by this agent.
	Username string `json:"username"`

	// FullName is the display name of the agent.
	// It is non-sensitive and may be shown in UI.
	FullName string `json:"full_name"`

	// PasswordHash stores the bcrypt hash of the agent's password.
	// This value MUST be a salted one-way hash, never plaintext.
	// It is never serialized to JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Agent model.
func (a Agent) TableName() string {
	return "users"
}

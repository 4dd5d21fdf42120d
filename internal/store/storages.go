package store

import (
	"context"

	"github.com/MrK0xGT/insurance-crm/internal/config"
	"github.com/MrK0xGT/insurance-crm/internal/logger"
	"github.com/MrK0xGT/insurance-crm/migrations"
)

// Storages bundles every repository the service layer depends on, all backed
// by a single PostgreSQL connection pool.
type Storages struct {
	AgentRepository  AgentRepository
	ClientRepository ClientRepository
}

// NewStorages connects to PostgreSQL, applies pending schema migrations, and
// wires up the repositories.
//
// Returns an error if the connection cannot be established or a migration
// fails; both are fatal at startup.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := migrations.Migrate(db.DB); err != nil {
		log.Err(err).Msg("error applying migrations")
		return nil, err
	}

	return &Storages{
		AgentRepository:  NewAgentRepository(db, log),
		ClientRepository: NewClientRepository(db, log),
	}, nil
}

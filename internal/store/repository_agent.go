package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrK0xGT/insurance-crm/internal/logger"
	"github.com/MrK0xGT/insurance-crm/models"
	"github.com/jackc/pgerrcode"
)

// agentRepository is the PostgreSQL-backed implementation of
// [AgentRepository]. It handles account creation and lookup against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type agentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAgentRepository constructs an [AgentRepository] backed by the provided
// database connection and logger.
func NewAgentRepository(db *DB, logger *logger.Logger) AgentRepository {
	logger.Debug().Msg("creating agent repository")
	return &agentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAgent persists a new account and returns the fully populated
// [models.Agent] with server-assigned fields (AgentID, CreatedAt).
//
// The INSERT uses the [createAgent] query whose RETURNING clause hands back
// all columns, so the caller receives the canonical database representation
// of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameTaken].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *agentRepository) CreateAgent(ctx context.Context, agent models.Agent) (models.Agent, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAgent, agent.Username, agent.FullName, agent.PasswordHash)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*agentRepository.CreateAgent").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Agent{}, ErrUsernameTaken
		default:
			return models.Agent{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&agent.AgentID, &agent.Username, &agent.FullName, &agent.PasswordHash, &agent.CreatedAt); err != nil {
		log.Err(err).Str("func", "*agentRepository.CreateAgent").Msg("error: scanning error")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Agent{}, ErrUsernameTaken
		}
		return models.Agent{}, err
	}

	return agent, nil
}

// FindAgentByUsername retrieves the account whose username matches the given
// value.
//
// Error handling:
//   - No matching row ([sql.ErrNoRows]) → [ErrAgentNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *agentRepository) FindAgentByUsername(ctx context.Context, username string) (models.Agent, error) {
	log := logger.FromContext(ctx)

	var foundAgent models.Agent
	row := r.db.QueryRowContext(ctx, findAgentByUsername, username)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*agentRepository.FindAgentByUsername").Msg("error: row is nil")
		return models.Agent{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&foundAgent.AgentID, &foundAgent.Username, &foundAgent.FullName, &foundAgent.PasswordHash, &foundAgent.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Agent{}, ErrAgentNotFound
		}

		log.Err(err).Str("func", "*agentRepository.FindAgentByUsername").Msg("error: scanning error")
		return models.Agent{}, err
	}

	return foundAgent, nil
}

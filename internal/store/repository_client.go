package store

import (
	"context"
	"fmt"

	"github.com/MrK0xGT/insurance-crm/internal/logger"
	"github.com/MrK0xGT/insurance-crm/models"
)

// clientRepository is the PostgreSQL-backed implementation of
// [ClientRepository]. It executes all client-record CRUD operations against
// the "clients" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (username, record id, row counts).
type clientRepository struct {
	*DB
	logger *logger.Logger
}

// NewClientRepository constructs a [ClientRepository] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewClientRepository(db *DB, logger *logger.Logger) ClientRepository {
	return &clientRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateClient inserts one client record and returns the store-assigned id.
//
// The record must arrive with ciphertext in EncryptedName/EncryptedPlate and
// the owner username already attached by the service layer from a verified
// authentication result. The INSERT is a single row, so there is no partial
// write to observe on failure.
func (c *clientRepository) CreateClient(ctx context.Context, record models.ClientRecord) (int64, error) {
	log := logger.FromContext(ctx)

	row := c.DB.QueryRowContext(ctx, createClient,
		record.AgentUsername,
		record.EncryptedName,
		record.EncryptedPlate,
		record.Phone,
		record.ExpiryDate,
		record.InsuranceType,
		record.Notes,
	)

	var id int64
	if err := row.Scan(&id); err != nil {
		log.Err(err).
			Str("func", "clientRepository.CreateClient").
			Str("username", record.AgentUsername).
			Msg("failed to insert client record")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

// GetClientsByAgent retrieves every record owned by username, sorted by
// expiry date ascending.
//
// The owner predicate is embedded in the SQL built by
// [buildClientsByAgentQuery]; rows of other agents never leave the database
// server. Returns an empty slice when the agent owns no records.
func (c *clientRepository) GetClientsByAgent(ctx context.Context, username string) ([]models.ClientRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildClientsByAgentQuery(username)
	if err != nil {
		log.Err(err).
			Str("func", "clientRepository.GetClientsByAgent").
			Str("username", username).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "clientRepository.GetClientsByAgent").
			Str("username", username).
			Msg("failed to execute query for getting client records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.ClientRecord, 0, 50)

	for rows.Next() {
		var record models.ClientRecord

		scanErr := rows.Scan(
			&record.ID,
			&record.AgentUsername,
			&record.EncryptedName,
			&record.EncryptedPlate,
			&record.Phone,
			&record.ExpiryDate,
			&record.InsuranceType,
			&record.Notes,
			&record.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "clientRepository.GetClientsByAgent").
				Str("username", username).
				Msg("failed to scan client record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "clientRepository.GetClientsByAgent").
			Str("username", username).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// DeleteClient removes the record with the given id provided it is owned by
// username. The delete predicate built by [buildDeleteClientQuery] requires
// both fields to match, so an agent cannot delete another tenant's record by
// guessing ids.
//
// Returns [ErrClientNotFound] when no row matched, for an absent id and a
// foreign-owned id alike.
func (c *clientRepository) DeleteClient(ctx context.Context, id int64, username string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteClientQuery(id, username)
	if err != nil {
		log.Err(err).
			Str("func", "clientRepository.DeleteClient").
			Int64("id", id).
			Str("username", username).
			Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "clientRepository.DeleteClient").
			Int64("id", id).
			Str("username", username).
			Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "clientRepository.DeleteClient").
			Int64("id", id).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrClientNotFound
	}

	return nil
}

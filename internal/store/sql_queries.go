package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createAgent = `INSERT INTO users (username, full_name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, full_name, password_hash, created_at;`

	findAgentByUsername = `SELECT user_id, username, full_name, password_hash, created_at
    FROM users
    WHERE username = $1;`

	createClient = `INSERT INTO clients (
			agent_username,
			encrypted_name,
			encrypted_plate,
			phone_number,
			expiry_date,
			insurance_type,
			notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;`
)

// psql is the statement builder configured for PostgreSQL's $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// clientColumns is the canonical column order shared by the list query and
// the row scanner in repository_client.go.
var clientColumns = []string{
	"id",
	"agent_username",
	"encrypted_name",
	"encrypted_plate",
	"phone_number",
	"expiry_date",
	"insurance_type",
	"notes",
	"created_at",
}

// buildClientsByAgentQuery builds the tenant-scoped listing query. The owner
// predicate is part of the generated SQL, so filtering happens on the
// database server, never in process. Records come back sorted by expiry date
// ascending.
func buildClientsByAgentQuery(username string) (string, []any, error) {
	return psql.
		Select(clientColumns...).
		From("clients").
		Where(sq.Eq{"agent_username": username}).
		OrderBy("expiry_date ASC").
		ToSql()
}

// buildDeleteClientQuery builds the owner-scoped delete. The record must
// match both the id and the requesting agent's username; an id owned by
// another tenant deletes zero rows.
func buildDeleteClientQuery(id int64, username string) (string, []any, error) {
	return psql.
		Delete("clients").
		Where(sq.Eq{"id": id, "agent_username": username}).
		ToSql()
}

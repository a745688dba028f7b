package presence

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// Querier is the storage interface for presence records.
// Implemented by PostgresRepository and mocked in tests.
type Querier interface {
	UpsertEntry(ctx context.Context, arg UpsertEntryParams) error
	ListSince(ctx context.Context, since time.Time, limit int32) ([]Entry, error)
}

// PostgresRepository implements Querier against the presence_entries table.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgresRepository.
func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const upsertEntryQuery = `
INSERT INTO presence_entries (subject, label, handle, page, last_seen_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (subject) DO UPDATE SET
    label        = EXCLUDED.label,
    handle       = EXCLUDED.handle,
    page         = EXCLUDED.page,
    last_seen_at = now()
`

// UpsertEntry records a presence ping for a subject.
func (r *PostgresRepository) UpsertEntry(ctx context.Context, arg UpsertEntryParams) error {
	_, err := r.db.ExecContext(ctx, upsertEntryQuery, arg.Subject, arg.Label, arg.Handle, arg.Page)
	return err
}

const listSinceQuery = `
SELECT subject, label, handle, page, last_seen_at
FROM presence_entries
WHERE last_seen_at > $1
ORDER BY last_seen_at DESC
LIMIT $2
`

// ListSince returns presence entries seen after the cutoff, newest first.
func (r *PostgresRepository) ListSince(ctx context.Context, since time.Time, limit int32) ([]Entry, error) {
	entries := []Entry{}
	err := r.db.SelectContext(ctx, &entries, listSinceQuery, since, limit)
	return entries, err
}

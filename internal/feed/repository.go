package feed

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Querier is the storage interface for feed messages.
// Implemented by PostgresRepository and mocked in tests.
type Querier interface {
	InsertMessage(ctx context.Context, arg InsertMessageParams) (Message, error)
	ListMessages(ctx context.Context, arg ListMessagesParams) ([]MessageWithAuthor, error)
}

// PostgresRepository implements Querier against the feed_messages table.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgresRepository.
func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const insertMessageQuery = `
INSERT INTO feed_messages (id, subject, author_name, author_handle, body, page, mentions, created_at)
VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, now())
RETURNING id, subject, author_name, author_handle, body, page, mentions, created_at
`

// InsertMessage persists one feed message with its author snapshot.
func (r *PostgresRepository) InsertMessage(ctx context.Context, arg InsertMessageParams) (Message, error) {
	var m Message
	err := r.db.GetContext(ctx, &m, insertMessageQuery,
		arg.Subject, arg.AuthorName, arg.AuthorHandle, arg.Body, arg.Page, pq.Array(arg.Mentions))
	return m, err
}

// The LEFT JOIN keeps messages displayable when no profile row exists for
// the subject; the service applies the snapshot/subject fallback. The row
// comparison gives keyset pagination its strict-before semantics with id as
// tiebreak for equal timestamps.
const listMessagesQuery = `
SELECT m.id, m.subject, m.author_name, m.author_handle, m.body, m.page, m.mentions, m.created_at,
       p.display_name AS live_name, p.handle AS live_handle
FROM feed_messages m
LEFT JOIN user_profiles p ON p.subject = m.subject
WHERE ($1::timestamptz IS NULL OR (m.created_at, m.id) < ($1::timestamptz, $2::uuid))
ORDER BY m.created_at DESC, m.id DESC
LIMIT $3
`

// ListMessages returns a page of messages joined against the live profiles.
func (r *PostgresRepository) ListMessages(ctx context.Context, arg ListMessagesParams) ([]MessageWithAuthor, error) {
	var beforeAt, beforeID any
	if arg.Before != nil {
		beforeAt = arg.Before.CreatedAt
		beforeID = arg.Before.ID
	}
	rows := []MessageWithAuthor{}
	err := r.db.SelectContext(ctx, &rows, listMessagesQuery, beforeAt, beforeID, arg.Limit)
	return rows, err
}

package identity

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Querier is the storage interface for identity profiles.
// Implemented by PostgresRepository and mocked in tests.
type Querier interface {
	UpsertProfile(ctx context.Context, arg UpsertProfileParams) (Profile, error)
	GetProfile(ctx context.Context, subject string) (Profile, error)
}

// PostgresRepository implements Querier against the user_profiles table.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgresRepository.
func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// upsertProfileQuery applies the resolver's precedence rules inside a single
// conflict-resolving statement. The insert branch stores the candidate
// unconditionally (first write always stores something); the conflict branch
// only lets the candidate through when the meaningful flag ($6) is set, and
// never clears email or picture on an absent claim. The handle follows the
// display name: it is only replaced when the stored display name actually
// changes, so a stored handle that diverges from the derived slug survives
// resolves that re-assert the same name. last_seen_at advances on every
// write. Running the whole decision in one statement means two concurrent
// requests for the same subject cannot interleave a lost update.
const upsertProfileQuery = `
INSERT INTO user_profiles (subject, email, display_name, handle, picture_url, last_seen_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now(), now())
ON CONFLICT (subject) DO UPDATE SET
    email        = COALESCE(NULLIF(EXCLUDED.email, ''), user_profiles.email),
    picture_url  = COALESCE(NULLIF(EXCLUDED.picture_url, ''), user_profiles.picture_url),
    display_name = CASE WHEN $6 THEN EXCLUDED.display_name ELSE user_profiles.display_name END,
    handle       = CASE WHEN $6 AND user_profiles.display_name IS DISTINCT FROM EXCLUDED.display_name
                        THEN EXCLUDED.handle ELSE user_profiles.handle END,
    last_seen_at = now(),
    updated_at   = now()
RETURNING subject, email, display_name, handle, picture_url, last_seen_at, created_at, updated_at
`

// UpsertProfile inserts or updates the profile row for a subject and returns
// the row as committed by the store.
func (r *PostgresRepository) UpsertProfile(ctx context.Context, arg UpsertProfileParams) (Profile, error) {
	var p Profile
	err := r.db.GetContext(ctx, &p, upsertProfileQuery,
		arg.Subject, arg.Email, arg.DisplayName, arg.Handle, arg.PictureURL, arg.NameMeaningful)
	return p, err
}

const getProfileQuery = `
SELECT subject, email, display_name, handle, picture_url, last_seen_at, created_at, updated_at
FROM user_profiles
WHERE subject = $1
`

// GetProfile fetches the profile row for a subject.
func (r *PostgresRepository) GetProfile(ctx context.Context, subject string) (Profile, error) {
	var p Profile
	err := r.db.GetContext(ctx, &p, getProfileQuery, subject)
	return p, err
}

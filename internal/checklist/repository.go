package checklist

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Querier is the storage interface for checklists.
// Implemented by PostgresRepository and mocked in tests.
type Querier interface {
	CreateChecklist(ctx context.Context, arg CreateChecklistParams) (Checklist, error)
	GetChecklist(ctx context.Context, arg GetChecklistParams) (Checklist, error)
	ListChecklists(ctx context.Context, ownerSubject string) ([]Checklist, error)
	UpdateChecklist(ctx context.Context, arg UpdateChecklistParams) (Checklist, error)
	DeleteChecklist(ctx context.Context, arg GetChecklistParams) (int64, error)
}

// PostgresRepository implements Querier against the checklists table.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgresRepository.
func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const createChecklistQuery = `
INSERT INTO checklists (id, owner_subject, title, items, created_at, updated_at)
VALUES (gen_random_uuid(), $1, $2, $3, now(), now())
RETURNING id, owner_subject, title, items, created_at, updated_at
`

// CreateChecklist inserts a new checklist for its owner.
func (r *PostgresRepository) CreateChecklist(ctx context.Context, arg CreateChecklistParams) (Checklist, error) {
	var cl Checklist
	err := r.db.GetContext(ctx, &cl, createChecklistQuery, arg.OwnerSubject, arg.Title, arg.Items)
	return cl, err
}

const getChecklistQuery = `
SELECT id, owner_subject, title, items, created_at, updated_at
FROM checklists
WHERE id = $1 AND owner_subject = $2
`

// GetChecklist fetches one checklist scoped to its owner.
func (r *PostgresRepository) GetChecklist(ctx context.Context, arg GetChecklistParams) (Checklist, error) {
	var cl Checklist
	err := r.db.GetContext(ctx, &cl, getChecklistQuery, arg.ID, arg.OwnerSubject)
	return cl, err
}

const listChecklistsQuery = `
SELECT id, owner_subject, title, items, created_at, updated_at
FROM checklists
WHERE owner_subject = $1
ORDER BY created_at DESC
`

// ListChecklists returns all checklists owned by a subject, newest first.
func (r *PostgresRepository) ListChecklists(ctx context.Context, ownerSubject string) ([]Checklist, error) {
	checklists := []Checklist{}
	err := r.db.SelectContext(ctx, &checklists, listChecklistsQuery, ownerSubject)
	return checklists, err
}

const updateChecklistQuery = `
UPDATE checklists
SET title = $3, items = $4, updated_at = now()
WHERE id = $1 AND owner_subject = $2
RETURNING id, owner_subject, title, items, created_at, updated_at
`

// UpdateChecklist updates a checklist scoped to its owner.
func (r *PostgresRepository) UpdateChecklist(ctx context.Context, arg UpdateChecklistParams) (Checklist, error) {
	var cl Checklist
	err := r.db.GetContext(ctx, &cl, updateChecklistQuery, arg.ID, arg.OwnerSubject, arg.Title, arg.Items)
	return cl, err
}

const deleteChecklistQuery = `
DELETE FROM checklists
WHERE id = $1 AND owner_subject = $2
`

// DeleteChecklist removes a checklist scoped to its owner, reporting how
// many rows went away so the caller can distinguish not-found.
func (r *PostgresRepository) DeleteChecklist(ctx context.Context, arg GetChecklistParams) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteChecklistQuery, arg.ID, arg.OwnerSubject)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

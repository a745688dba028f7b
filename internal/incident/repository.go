package incident

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Querier is the storage interface for incidents.
// Implemented by PostgresRepository and mocked in tests.
type Querier interface {
	CreateIncident(ctx context.Context, arg CreateIncidentParams) (Incident, error)
	GetIncident(ctx context.Context, arg GetIncidentParams) (Incident, error)
	ListIncidents(ctx context.Context, ownerSubject string) ([]Incident, error)
	UpdateIncident(ctx context.Context, arg UpdateIncidentParams) (Incident, error)
	DeleteIncident(ctx context.Context, arg GetIncidentParams) (int64, error)
}

// PostgresRepository implements Querier against the incidents table.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgresRepository.
func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const createIncidentQuery = `
INSERT INTO incidents (id, owner_subject, title, description, severity, status, created_at, updated_at)
VALUES (gen_random_uuid(), $1, $2, $3, $4, 'open', now(), now())
RETURNING id, owner_subject, title, description, severity, status, created_at, updated_at
`

// CreateIncident opens a new incident for its owner.
func (r *PostgresRepository) CreateIncident(ctx context.Context, arg CreateIncidentParams) (Incident, error) {
	var in Incident
	err := r.db.GetContext(ctx, &in, createIncidentQuery,
		arg.OwnerSubject, arg.Title, arg.Description, arg.Severity)
	return in, err
}

const getIncidentQuery = `
SELECT id, owner_subject, title, description, severity, status, created_at, updated_at
FROM incidents
WHERE id = $1 AND owner_subject = $2
`

// GetIncident fetches one incident scoped to its owner.
func (r *PostgresRepository) GetIncident(ctx context.Context, arg GetIncidentParams) (Incident, error) {
	var in Incident
	err := r.db.GetContext(ctx, &in, getIncidentQuery, arg.ID, arg.OwnerSubject)
	return in, err
}

const listIncidentsQuery = `
SELECT id, owner_subject, title, description, severity, status, created_at, updated_at
FROM incidents
WHERE owner_subject = $1
ORDER BY created_at DESC
`

// ListIncidents returns all incidents owned by a subject, newest first.
func (r *PostgresRepository) ListIncidents(ctx context.Context, ownerSubject string) ([]Incident, error) {
	incidents := []Incident{}
	err := r.db.SelectContext(ctx, &incidents, listIncidentsQuery, ownerSubject)
	return incidents, err
}

const updateIncidentQuery = `
UPDATE incidents
SET title = $3, description = $4, severity = $5, status = $6, updated_at = now()
WHERE id = $1 AND owner_subject = $2
RETURNING id, owner_subject, title, description, severity, status, created_at, updated_at
`

// UpdateIncident updates an incident scoped to its owner.
func (r *PostgresRepository) UpdateIncident(ctx context.Context, arg UpdateIncidentParams) (Incident, error) {
	var in Incident
	err := r.db.GetContext(ctx, &in, updateIncidentQuery,
		arg.ID, arg.OwnerSubject, arg.Title, arg.Description, arg.Severity, arg.Status)
	return in, err
}

const deleteIncidentQuery = `
DELETE FROM incidents
WHERE id = $1 AND owner_subject = $2
`

// DeleteIncident removes an incident scoped to its owner.
func (r *PostgresRepository) DeleteIncident(ctx context.Context, arg GetIncidentParams) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteIncidentQuery, arg.ID, arg.OwnerSubject)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

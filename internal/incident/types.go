package incident

import (
	"time"

	"github.com/google/uuid"
)

// Severity levels an incident can carry.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Status values an incident moves through.
const (
	StatusOpen     = "open"
	StatusAck      = "ack"
	StatusResolved = "resolved"
)

// Incident is a persisted incident owned by one subject.
type Incident struct {
	ID           uuid.UUID `db:"id" json:"id"`
	OwnerSubject string    `db:"owner_subject" json:"owner_subject"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description,omitempty"`
	Severity     string    `db:"severity" json:"severity"`
	Status       string    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// CreateIncidentRequest is the request body for opening an incident.
type CreateIncidentRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Severity    string `json:"severity" binding:"required"`
}

// UpdateIncidentRequest is the request body for updating an incident.
type UpdateIncidentRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Severity    string `json:"severity" binding:"required"`
	Status      string `json:"status" binding:"required"`
}

// CreateIncidentParams carries one incident insert.
type CreateIncidentParams struct {
	OwnerSubject string
	Title        string
	Description  string
	Severity     string
}

// UpdateIncidentParams carries one ownership-scoped incident update.
type UpdateIncidentParams struct {
	ID           uuid.UUID
	OwnerSubject string
	Title        string
	Description  string
	Severity     string
	Status       string
}

// GetIncidentParams identifies one incident scoped to its owner.
type GetIncidentParams struct {
	ID           uuid.UUID
	OwnerSubject string
}

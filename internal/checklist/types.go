package checklist

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Item is one line of a checklist.
type Item struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Items is the jsonb-backed item list column.
type Items []Item

// Value implements driver.Valuer so Items can bind to a jsonb column.
func (i Items) Value() (driver.Value, error) {
	if i == nil {
		return json.Marshal(Items{})
	}
	return json.Marshal(i)
}

// Scan implements sql.Scanner for reading the jsonb column back.
func (i *Items) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, i)
	case string:
		return json.Unmarshal([]byte(v), i)
	case nil:
		*i = Items{}
		return nil
	}
	return errors.New("checklist: unsupported items column type")
}

// Checklist is a persisted checklist owned by one subject.
type Checklist struct {
	ID           uuid.UUID `db:"id" json:"id"`
	OwnerSubject string    `db:"owner_subject" json:"owner_subject"`
	Title        string    `db:"title" json:"title"`
	Items        Items     `db:"items" json:"items"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// CreateChecklistRequest is the request body for creating a checklist.
type CreateChecklistRequest struct {
	Title string `json:"title" binding:"required"`
	Items Items  `json:"items"`
}

// UpdateChecklistRequest is the request body for updating a checklist.
type UpdateChecklistRequest struct {
	Title string `json:"title" binding:"required"`
	Items Items  `json:"items"`
}

// CreateChecklistParams carries one checklist insert.
type CreateChecklistParams struct {
	OwnerSubject string
	Title        string
	Items        Items
}

// UpdateChecklistParams carries one ownership-scoped checklist update.
type UpdateChecklistParams struct {
	ID           uuid.UUID
	OwnerSubject string
	Title        string
	Items        Items
}

// GetChecklistParams identifies one checklist scoped to its owner.
type GetChecklistParams struct {
	ID           uuid.UUID
	OwnerSubject string
}

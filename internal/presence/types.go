package presence

import (
	"time"
)

// Entry is a presence record: the latest ping for a subject, carrying a
// snapshot of the display fields current at ping time.
type Entry struct {
	Subject    string    `db:"subject" json:"subject"`
	Label      string    `db:"label" json:"label"`
	Handle     string    `db:"handle" json:"handle"`
	Page       string    `db:"page" json:"page,omitempty"`
	LastSeenAt time.Time `db:"last_seen_at" json:"last_seen_at"`
}

// PingRequest is the request body for a presence ping.
type PingRequest struct {
	Page string `json:"page"`
}

// UpsertEntryParams carries one presence write.
type UpsertEntryParams struct {
	Subject string
	Label   string
	Handle  string
	Page    string
}

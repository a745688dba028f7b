package identity

import (
	"time"
)

// Profile is the persisted identity record for a subject. One row per
// subject identifier; created on first verified request and updated on
// every request after that, never deleted.
type Profile struct {
	Subject     string    `db:"subject" json:"subject"`
	Email       string    `db:"email" json:"email,omitempty"`
	DisplayName string    `db:"display_name" json:"display_name"`
	Handle      string    `db:"handle" json:"handle"`
	PictureURL  string    `db:"picture_url" json:"picture_url,omitempty"`
	LastSeenAt  time.Time `db:"last_seen_at" json:"last_seen_at"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Resolved is the outcome of resolving a claim set against whatever profile
// is already on file: the values that should end up stored and shown.
type Resolved struct {
	DisplayName string
	Handle      string
	Email       string
	PictureURL  string

	// NameMeaningful reports whether the display name candidate derived
	// from the claims is eligible to overwrite a stored display name.
	NameMeaningful bool
}

// UpsertProfileParams carries one resolved claim set into the conflict-
// resolving profile write.
type UpsertProfileParams struct {
	Subject        string
	Email          string
	DisplayName    string
	Handle         string
	PictureURL     string
	NameMeaningful bool
}

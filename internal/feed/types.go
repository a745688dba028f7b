package feed

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Message is a persisted feed message. Author display fields are a snapshot
// taken at write time; the subject is kept alongside so read paths can
// re-join against the live profile.
type Message struct {
	ID           uuid.UUID      `db:"id" json:"id"`
	Subject      string         `db:"subject" json:"subject"`
	AuthorName   string         `db:"author_name" json:"author_name"`
	AuthorHandle string         `db:"author_handle" json:"author_handle"`
	Body         string         `db:"body" json:"body"`
	Page         string         `db:"page" json:"page,omitempty"`
	Mentions     pq.StringArray `db:"mentions" json:"mentions"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
}

// MessageWithAuthor is a feed row joined against the live profile table.
// The Live* fields are null when no profile row matches the subject.
type MessageWithAuthor struct {
	Message
	LiveName   sql.NullString `db:"live_name"`
	LiveHandle sql.NullString `db:"live_handle"`
}

// SendMessageRequest is the request body for posting a feed message.
type SendMessageRequest struct {
	Body string `json:"body" binding:"required"`
	Page string `json:"page"`
}

// FeedItem is one feed message prepared for display.
type FeedItem struct {
	ID        uuid.UUID `json:"id"`
	Subject   string    `json:"subject"`
	By        string    `json:"by"`
	Handle    string    `json:"handle,omitempty"`
	Body      string    `json:"body"`
	Page      string    `json:"page,omitempty"`
	Mentions  []string  `json:"mentions"`
	CreatedAt time.Time `json:"created_at"`
}

// ListResponse is a page of feed items with keyset pagination metadata.
type ListResponse struct {
	Items      []FeedItem `json:"items"`
	HasMore    bool       `json:"has_more"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

// InsertMessageParams carries one message write.
type InsertMessageParams struct {
	Subject      string
	AuthorName   string
	AuthorHandle string
	Body         string
	Page         string
	Mentions     []string
}

// ListMessagesParams selects a page of messages. When Before is set, only
// rows strictly before the (CreatedAt, ID) pair are returned, ordered by
// created_at descending with id descending as tiebreak.
type ListMessagesParams struct {
	Before *Cursor
	Limit  int32
}

package feed

import (
	"context"
	"strings"

	appErrors "github.com/crewhq/crewhq-backend/internal/errors"
	"github.com/crewhq/crewhq-backend/internal/identity"
	"github.com/sirupsen/logrus"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// Service provides business logic for the team feed.
type Service struct {
	repo   Querier
	logger *logrus.Logger
}

// NewService creates a new feed Service.
// Used to inject dependencies and enable testability.
func NewService(repo Querier, logger *logrus.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Send persists a feed message, snapshotting the author's current display
// fields from the already-resolved profile so the message stays attributable
// even if the profile changes or disappears later.
func (s *Service) Send(ctx context.Context, author *identity.Profile, req SendMessageRequest) (*Message, error) {
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, appErrors.ErrEmptyMessageBody
	}

	msg, err := s.repo.InsertMessage(ctx, InsertMessageParams{
		Subject:      author.Subject,
		AuthorName:   author.DisplayName,
		AuthorHandle: author.Handle,
		Body:         body,
		Page:         req.Page,
		Mentions:     ExtractMentions(body),
	})
	if err != nil {
		s.logger.WithField("subject", author.Subject).Error("InsertMessage error: ", err)
		return nil, appErrors.ErrInternalServer
	}
	return &msg, nil
}

// List returns one page of feed messages, newest first, using keyset
// pagination. One extra row is fetched beyond the page size to decide
// has_more without a second query.
func (s *Service) List(ctx context.Context, cursorToken string, limit int32) (*ListResponse, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	cursor, err := DecodeCursor(cursorToken)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListMessages(ctx, ListMessagesParams{Before: cursor, Limit: limit + 1})
	if err != nil {
		s.logger.Error("ListMessages error: ", err)
		return nil, appErrors.ErrInternalServer
	}

	hasMore := len(rows) > int(limit)
	if hasMore {
		rows = rows[:limit]
	}

	items := make([]FeedItem, 0, len(rows))
	for _, row := range rows {
		by, handle := displayAuthor(row)
		items = append(items, FeedItem{
			ID:        row.ID,
			Subject:   row.Subject,
			By:        by,
			Handle:    handle,
			Body:      row.Body,
			Page:      row.Page,
			Mentions:  row.Mentions,
			CreatedAt: row.CreatedAt,
		})
	}

	resp := &ListResponse{Items: items, HasMore: hasMore}
	if hasMore && len(rows) > 0 {
		last := rows[len(rows)-1]
		resp.NextCursor = Cursor{CreatedAt: last.CreatedAt, ID: last.ID}.Encode()
	}
	return resp, nil
}

// displayAuthor picks the author fields to show for a message: the live
// profile when one exists, else the snapshot taken at write time, else the
// raw subject. A message is always displayable.
func displayAuthor(row MessageWithAuthor) (by, handle string) {
	switch {
	case row.LiveName.Valid && row.LiveName.String != "":
		by = row.LiveName.String
	case row.AuthorName != "":
		by = row.AuthorName
	default:
		by = row.Subject
	}
	switch {
	case row.LiveHandle.Valid && row.LiveHandle.String != "":
		handle = row.LiveHandle.String
	default:
		handle = row.AuthorHandle
	}
	return by, handle
}

package feed

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	appErrors "github.com/crewhq/crewhq-backend/internal/errors"
	"github.com/crewhq/crewhq-backend/internal/identity"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func testAuthor() *identity.Profile {
	return &identity.Profile{
		Subject:     "auth0|123",
		DisplayName: "Jane Doe",
		Handle:      "jane-doe",
	}
}

// testMessages builds n message rows with strictly decreasing timestamps,
// newest first, with no matching live profile.
func testMessages(n int) []MessageWithAuthor {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rows := make([]MessageWithAuthor, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, MessageWithAuthor{
			Message: Message{
				ID:           uuid.New(),
				Subject:      "auth0|123",
				AuthorName:   "Jane Doe",
				AuthorHandle: "jane-doe",
				Body:         "message",
				CreatedAt:    base.Add(-time.Duration(i) * time.Minute),
			},
		})
	}
	return rows
}

// TestSend tests the Send method
func TestSend(t *testing.T) {
	tests := []struct {
		name           string
		request        SendMessageRequest
		setupMocks     func(*MockRepository)
		expectedError  error
		expectedParams *InsertMessageParams
	}{
		{
			name:    "Success - Author snapshot and mentions stored with the message",
			request: SendMessageRequest{Body: "hey @Alice and @bob, also @Alice", Page: "/incidents"},
			setupMocks: func(repo *MockRepository) {
				repo.On("InsertMessage", mock.Anything, InsertMessageParams{
					Subject:      "auth0|123",
					AuthorName:   "Jane Doe",
					AuthorHandle: "jane-doe",
					Body:         "hey @Alice and @bob, also @Alice",
					Page:         "/incidents",
					Mentions:     []string{"alice", "bob"},
				}).Return(Message{ID: uuid.New(), Body: "hey @Alice and @bob, also @Alice"}, nil)
			},
		},
		{
			name:          "Failure - Blank body rejected before any store write",
			request:       SendMessageRequest{Body: "   "},
			setupMocks:    func(repo *MockRepository) {},
			expectedError: appErrors.ErrEmptyMessageBody,
		},
		{
			name:    "Failure - Store error surfaces as internal",
			request: SendMessageRequest{Body: "hello"},
			setupMocks: func(repo *MockRepository) {
				repo.On("InsertMessage", mock.Anything, mock.Anything).
					Return(Message{}, errors.New("connection refused"))
			},
			expectedError: appErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setupMocks(mockRepo)
			service := NewService(mockRepo, testLogger())

			msg, err := service.Send(context.Background(), testAuthor(), tt.request)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, msg)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, msg)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

// TestListPagination tests keyset pagination across two pages with no
// overlap and no gap
func TestListPagination(t *testing.T) {
	all := testMessages(5)

	mockRepo := new(MockRepository)
	// First page: limit 2 requests 3 rows, gets 3 back.
	mockRepo.On("ListMessages", mock.Anything, ListMessagesParams{Limit: 3}).
		Return(all[:3], nil).Once()
	service := NewService(mockRepo, testLogger())

	first, err := service.List(context.Background(), "", 2)

	assert.NoError(t, err)
	assert.Len(t, first.Items, 2)
	assert.True(t, first.HasMore)
	assert.NotEmpty(t, first.NextCursor)
	assert.Equal(t, all[0].ID, first.Items[0].ID)
	assert.Equal(t, all[1].ID, first.Items[1].ID)

	// The cursor points at the last returned row.
	cursor, err := DecodeCursor(first.NextCursor)
	assert.NoError(t, err)
	assert.Equal(t, all[1].ID, cursor.ID)
	assert.True(t, cursor.CreatedAt.Equal(all[1].CreatedAt))

	// Second page resumes strictly after the cursor.
	mockRepo.On("ListMessages", mock.Anything, mock.MatchedBy(func(arg ListMessagesParams) bool {
		return arg.Limit == 3 && arg.Before != nil && arg.Before.ID == all[1].ID
	})).Return(all[2:4], nil).Once()

	second, err := service.List(context.Background(), first.NextCursor, 2)

	assert.NoError(t, err)
	assert.Len(t, second.Items, 2)
	assert.False(t, second.HasMore)
	assert.Empty(t, second.NextCursor)
	assert.Equal(t, all[2].ID, second.Items[0].ID)
	assert.Equal(t, all[3].ID, second.Items[1].ID)

	mockRepo.AssertExpectations(t)
}

// TestListLastPartialPage tests has_more when fewer rows than the page size
// remain
func TestListLastPartialPage(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("ListMessages", mock.Anything, ListMessagesParams{Limit: 3}).
		Return(testMessages(1), nil)
	service := NewService(mockRepo, testLogger())

	resp, err := service.List(context.Background(), "", 2)

	assert.NoError(t, err)
	assert.Len(t, resp.Items, 1)
	assert.False(t, resp.HasMore)
	assert.Empty(t, resp.NextCursor)
}

// TestListInvalidCursor tests that a malformed cursor is rejected
func TestListInvalidCursor(t *testing.T) {
	service := NewService(new(MockRepository), testLogger())

	_, err := service.List(context.Background(), "not-a-cursor", 10)

	assert.ErrorIs(t, err, appErrors.ErrInvalidCursor)
}

// TestDisplayAuthorFallback tests the live-profile / snapshot / subject
// fallback chain for message attribution
func TestDisplayAuthorFallback(t *testing.T) {
	tests := []struct {
		name           string
		row            MessageWithAuthor
		expectedBy     string
		expectedHandle string
	}{
		{
			name: "Live profile wins over the snapshot",
			row: MessageWithAuthor{
				Message: Message{
					Subject:      "auth0|123",
					AuthorName:   "Old Name",
					AuthorHandle: "old-name",
				},
				LiveName:   sql.NullString{String: "New Name", Valid: true},
				LiveHandle: sql.NullString{String: "new-name", Valid: true},
			},
			expectedBy:     "New Name",
			expectedHandle: "new-name",
		},
		{
			name: "Snapshot used when no live profile matches",
			row: MessageWithAuthor{
				Message: Message{
					Subject:      "auth0|123",
					AuthorName:   "Old Name",
					AuthorHandle: "old-name",
				},
			},
			expectedBy:     "Old Name",
			expectedHandle: "old-name",
		},
		{
			name: "Subject is the last resort",
			row: MessageWithAuthor{
				Message: Message{Subject: "auth0|123"},
			},
			expectedBy:     "auth0|123",
			expectedHandle: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			by, handle := displayAuthor(tt.row)
			assert.Equal(t, tt.expectedBy, by)
			assert.Equal(t, tt.expectedHandle, handle)
		})
	}
}

// TestCursorRoundTrip tests that encoding and decoding a cursor preserves
// the pair
func TestCursorRoundTrip(t *testing.T) {
	c := Cursor{CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 123456789, time.UTC), ID: uuid.New()}

	decoded, err := DecodeCursor(c.Encode())

	assert.NoError(t, err)
	assert.Equal(t, c.ID, decoded.ID)
	assert.True(t, c.CreatedAt.Equal(decoded.CreatedAt))
}

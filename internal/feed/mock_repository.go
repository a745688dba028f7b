package feed

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of Querier
type MockRepository struct {
	mock.Mock
}

// InsertMessage mocks the InsertMessage method
func (m *MockRepository) InsertMessage(ctx context.Context, arg InsertMessageParams) (Message, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(Message), args.Error(1)
}

// ListMessages mocks the ListMessages method
func (m *MockRepository) ListMessages(ctx context.Context, arg ListMessagesParams) ([]MessageWithAuthor, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).([]MessageWithAuthor), args.Error(1)
}

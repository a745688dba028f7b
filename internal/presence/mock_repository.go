package presence

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of Querier
type MockRepository struct {
	mock.Mock
}

// UpsertEntry mocks the UpsertEntry method
func (m *MockRepository) UpsertEntry(ctx context.Context, arg UpsertEntryParams) error {
	args := m.Called(ctx, arg)
	return args.Error(0)
}

// ListSince mocks the ListSince method
func (m *MockRepository) ListSince(ctx context.Context, since time.Time, limit int32) ([]Entry, error) {
	args := m.Called(ctx, since, limit)
	return args.Get(0).([]Entry), args.Error(1)
}

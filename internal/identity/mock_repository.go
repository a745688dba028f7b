package identity

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of Querier
type MockRepository struct {
	mock.Mock
}

// UpsertProfile mocks the UpsertProfile method
func (m *MockRepository) UpsertProfile(ctx context.Context, arg UpsertProfileParams) (Profile, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(Profile), args.Error(1)
}

// GetProfile mocks the GetProfile method
func (m *MockRepository) GetProfile(ctx context.Context, subject string) (Profile, error) {
	args := m.Called(ctx, subject)
	return args.Get(0).(Profile), args.Error(1)
}

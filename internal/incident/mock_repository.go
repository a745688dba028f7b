package incident

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of Querier
type MockRepository struct {
	mock.Mock
}

// CreateIncident mocks the CreateIncident method
func (m *MockRepository) CreateIncident(ctx context.Context, arg CreateIncidentParams) (Incident, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(Incident), args.Error(1)
}

// GetIncident mocks the GetIncident method
func (m *MockRepository) GetIncident(ctx context.Context, arg GetIncidentParams) (Incident, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(Incident), args.Error(1)
}

// ListIncidents mocks the ListIncidents method
func (m *MockRepository) ListIncidents(ctx context.Context, ownerSubject string) ([]Incident, error) {
	args := m.Called(ctx, ownerSubject)
	return args.Get(0).([]Incident), args.Error(1)
}

// UpdateIncident mocks the UpdateIncident method
func (m *MockRepository) UpdateIncident(ctx context.Context, arg UpdateIncidentParams) (Incident, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(Incident), args.Error(1)
}

// DeleteIncident mocks the DeleteIncident method
func (m *MockRepository) DeleteIncident(ctx context.Context, arg GetIncidentParams) (int64, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(int64), args.Error(1)
}

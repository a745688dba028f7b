package checklist

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of Querier
type MockRepository struct {
	mock.Mock
}

// CreateChecklist mocks the CreateChecklist method
func (m *MockRepository) CreateChecklist(ctx context.Context, arg CreateChecklistParams) (Checklist, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(Checklist), args.Error(1)
}

// GetChecklist mocks the GetChecklist method
func (m *MockRepository) GetChecklist(ctx context.Context, arg GetChecklistParams) (Checklist, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(Checklist), args.Error(1)
}

// ListChecklists mocks the ListChecklists method
func (m *MockRepository) ListChecklists(ctx context.Context, ownerSubject string) ([]Checklist, error) {
	args := m.Called(ctx, ownerSubject)
	return args.Get(0).([]Checklist), args.Error(1)
}

// UpdateChecklist mocks the UpdateChecklist method
func (m *MockRepository) UpdateChecklist(ctx context.Context, arg UpdateChecklistParams) (Checklist, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(Checklist), args.Error(1)
}

// DeleteChecklist mocks the DeleteChecklist method
func (m *MockRepository) DeleteChecklist(ctx context.Context, arg GetChecklistParams) (int64, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(int64), args.Error(1)
}

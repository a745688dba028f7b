package incident

import (
	"context"
	"database/sql"
	"testing"
	"time"

	appErrors "github.com/crewhq/crewhq-backend/internal/errors"
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

func createTestIncident() Incident {
	now := time.Now()
	return Incident{
		ID:           uuid.New(),
		OwnerSubject: "auth0|123",
		Title:        "Deploy pipeline stuck",
		Severity:     SeverityHigh,
		Status:       StatusOpen,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// TestCreateIncident tests the Create method
func TestCreateIncident(t *testing.T) {
	tests := []struct {
		name          string
		request       CreateIncidentRequest
		setupMocks    func(*MockRepository)
		expectedError error
	}{
		{
			name:    "Success - Valid incident creation",
			request: CreateIncidentRequest{Title: "Deploy pipeline stuck", Severity: SeverityHigh},
			setupMocks: func(repo *MockRepository) {
				repo.On("CreateIncident", mock.Anything, CreateIncidentParams{
					OwnerSubject: "auth0|123",
					Title:        "Deploy pipeline stuck",
					Severity:     SeverityHigh,
				}).Return(createTestIncident(), nil)
			},
		},
		{
			name:          "Failure - Unknown severity rejected before any store write",
			request:       CreateIncidentRequest{Title: "Deploy pipeline stuck", Severity: "catastrophic"},
			setupMocks:    func(repo *MockRepository) {},
			expectedError: appErrors.ErrInvalidSeverity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setupMocks(mockRepo)
			service := NewService(mockRepo, testLogger())

			in, err := service.Create(context.Background(), "auth0|123", tt.request)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, in)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, StatusOpen, in.Status)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

// TestUpdateIncident tests the Update method
func TestUpdateIncident(t *testing.T) {
	existing := createTestIncident()

	tests := []struct {
		name          string
		request       UpdateIncidentRequest
		setupMocks    func(*MockRepository)
		expectedError error
	}{
		{
			name: "Success - Resolve an incident",
			request: UpdateIncidentRequest{
				Title:    existing.Title,
				Severity: SeverityHigh,
				Status:   StatusResolved,
			},
			setupMocks: func(repo *MockRepository) {
				resolved := existing
				resolved.Status = StatusResolved
				repo.On("UpdateIncident", mock.Anything, UpdateIncidentParams{
					ID:           existing.ID,
					OwnerSubject: "auth0|123",
					Title:        existing.Title,
					Severity:     SeverityHigh,
					Status:       StatusResolved,
				}).Return(resolved, nil)
			},
		},
		{
			name: "Failure - Unknown status rejected before any store write",
			request: UpdateIncidentRequest{
				Title:    existing.Title,
				Severity: SeverityHigh,
				Status:   "closed",
			},
			setupMocks:    func(repo *MockRepository) {},
			expectedError: appErrors.ErrInvalidStatus,
		},
		{
			name: "Failure - Row owned by someone else reads as not found",
			request: UpdateIncidentRequest{
				Title:    existing.Title,
				Severity: SeverityHigh,
				Status:   StatusAck,
			},
			setupMocks: func(repo *MockRepository) {
				repo.On("UpdateIncident", mock.Anything, mock.Anything).
					Return(Incident{}, sql.ErrNoRows)
			},
			expectedError: appErrors.ErrIncidentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setupMocks(mockRepo)
			service := NewService(mockRepo, testLogger())

			in, err := service.Update(context.Background(), "auth0|123", existing.ID.String(), tt.request)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, in)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, StatusResolved, in.Status)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

// TestDeleteIncident tests the Delete method
func TestDeleteIncident(t *testing.T) {
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("DeleteIncident", mock.Anything, GetIncidentParams{
			ID:           id,
			OwnerSubject: "auth0|123",
		}).Return(int64(1), nil)
		service := NewService(mockRepo, testLogger())

		assert.NoError(t, service.Delete(context.Background(), "auth0|123", id.String()))
	})

	t.Run("Failure - Zero rows deleted is not found", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("DeleteIncident", mock.Anything, mock.Anything).Return(int64(0), nil)
		service := NewService(mockRepo, testLogger())

		err := service.Delete(context.Background(), "auth0|123", id.String())

		assert.ErrorIs(t, err, appErrors.ErrIncidentNotFound)
	})
}

package incident

import (
	"context"
	"database/sql"
	"errors"

	appErrors "github.com/crewhq/crewhq-backend/internal/errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Service provides business logic for incidents.
// All operations are scoped by the calling subject.
type Service struct {
	repo   Querier
	logger *logrus.Logger
}

// NewService creates a new incident Service.
// Used to inject dependencies and enable testability.
func NewService(repo Querier, logger *logrus.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func validSeverity(severity string) bool {
	switch severity {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

func validStatus(status string) bool {
	switch status {
	case StatusOpen, StatusAck, StatusResolved:
		return true
	}
	return false
}

// Create opens a new incident for the subject. New incidents always start
// open.
func (s *Service) Create(ctx context.Context, subject string, req CreateIncidentRequest) (*Incident, error) {
	if !validSeverity(req.Severity) {
		return nil, appErrors.ErrInvalidSeverity
	}
	s.logger.Infof("Creating incident for subject=%s severity=%s", subject, req.Severity)
	in, err := s.repo.CreateIncident(ctx, CreateIncidentParams{
		OwnerSubject: subject,
		Title:        req.Title,
		Description:  req.Description,
		Severity:     req.Severity,
	})
	if err != nil {
		s.logger.Error("CreateIncident error: ", err)
		return nil, appErrors.ErrInternalServer
	}
	return &in, nil
}

// List lists all incidents owned by the subject.
func (s *Service) List(ctx context.Context, subject string) ([]Incident, error) {
	incidents, err := s.repo.ListIncidents(ctx, subject)
	if err != nil {
		s.logger.Error("ListIncidents error: ", err)
		return nil, appErrors.ErrInternalServer
	}
	return incidents, nil
}

// Get gets a specific incident by ID for the subject.
func (s *Service) Get(ctx context.Context, subject, incidentID string) (*Incident, error) {
	id, err := uuid.Parse(incidentID)
	if err != nil {
		return nil, appErrors.ErrIncidentNotFound
	}
	in, err := s.repo.GetIncident(ctx, GetIncidentParams{ID: id, OwnerSubject: subject})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrIncidentNotFound
		}
		s.logger.Error("GetIncident error: ", err)
		return nil, appErrors.ErrInternalServer
	}
	return &in, nil
}

// Update updates an incident by ID for the subject.
func (s *Service) Update(ctx context.Context, subject, incidentID string, req UpdateIncidentRequest) (*Incident, error) {
	id, err := uuid.Parse(incidentID)
	if err != nil {
		return nil, appErrors.ErrIncidentNotFound
	}
	if !validSeverity(req.Severity) {
		return nil, appErrors.ErrInvalidSeverity
	}
	if !validStatus(req.Status) {
		return nil, appErrors.ErrInvalidStatus
	}
	in, err := s.repo.UpdateIncident(ctx, UpdateIncidentParams{
		ID:           id,
		OwnerSubject: subject,
		Title:        req.Title,
		Description:  req.Description,
		Severity:     req.Severity,
		Status:       req.Status,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrIncidentNotFound
		}
		s.logger.Error("UpdateIncident error: ", err)
		return nil, appErrors.ErrInternalServer
	}
	return &in, nil
}

// Delete deletes an incident by ID for the subject.
func (s *Service) Delete(ctx context.Context, subject, incidentID string) error {
	id, err := uuid.Parse(incidentID)
	if err != nil {
		return appErrors.ErrIncidentNotFound
	}
	affected, err := s.repo.DeleteIncident(ctx, GetIncidentParams{ID: id, OwnerSubject: subject})
	if err != nil {
		s.logger.Error("DeleteIncident error: ", err)
		return appErrors.ErrInternalServer
	}
	if affected == 0 {
		return appErrors.ErrIncidentNotFound
	}
	return nil
}

package checklist

import (
	"context"
	"database/sql"
	"errors"

	appErrors "github.com/crewhq/crewhq-backend/internal/errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Service provides business logic for checklists.
// All operations are scoped by the calling subject; a checklist another
// subject owns behaves exactly like one that does not exist.
type Service struct {
	repo   Querier
	logger *logrus.Logger
}

// NewService creates a new checklist Service.
// Used to inject dependencies and enable testability.
func NewService(repo Querier, logger *logrus.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create creates a new checklist for the subject.
func (s *Service) Create(ctx context.Context, subject string, req CreateChecklistRequest) (*Checklist, error) {
	s.logger.Infof("Creating checklist for subject=%s", subject)
	cl, err := s.repo.CreateChecklist(ctx, CreateChecklistParams{
		OwnerSubject: subject,
		Title:        req.Title,
		Items:        req.Items,
	})
	if err != nil {
		s.logger.Error("CreateChecklist error: ", err)
		return nil, appErrors.ErrInternalServer
	}
	return &cl, nil
}

// List lists all checklists owned by the subject.
func (s *Service) List(ctx context.Context, subject string) ([]Checklist, error) {
	checklists, err := s.repo.ListChecklists(ctx, subject)
	if err != nil {
		s.logger.Error("ListChecklists error: ", err)
		return nil, appErrors.ErrInternalServer
	}
	return checklists, nil
}

// Get gets a specific checklist by ID for the subject.
func (s *Service) Get(ctx context.Context, subject, checklistID string) (*Checklist, error) {
	id, err := uuid.Parse(checklistID)
	if err != nil {
		return nil, appErrors.ErrChecklistNotFound
	}
	cl, err := s.repo.GetChecklist(ctx, GetChecklistParams{ID: id, OwnerSubject: subject})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrChecklistNotFound
		}
		s.logger.Error("GetChecklist error: ", err)
		return nil, appErrors.ErrInternalServer
	}
	return &cl, nil
}

// Update updates a checklist by ID for the subject.
func (s *Service) Update(ctx context.Context, subject, checklistID string, req UpdateChecklistRequest) (*Checklist, error) {
	id, err := uuid.Parse(checklistID)
	if err != nil {
		return nil, appErrors.ErrChecklistNotFound
	}
	cl, err := s.repo.UpdateChecklist(ctx, UpdateChecklistParams{
		ID:           id,
		OwnerSubject: subject,
		Title:        req.Title,
		Items:        req.Items,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrChecklistNotFound
		}
		s.logger.Error("UpdateChecklist error: ", err)
		return nil, appErrors.ErrInternalServer
	}
	return &cl, nil
}

// Delete deletes a checklist by ID for the subject.
func (s *Service) Delete(ctx context.Context, subject, checklistID string) error {
	id, err := uuid.Parse(checklistID)
	if err != nil {
		return appErrors.ErrChecklistNotFound
	}
	affected, err := s.repo.DeleteChecklist(ctx, GetChecklistParams{ID: id, OwnerSubject: subject})
	if err != nil {
		s.logger.Error("DeleteChecklist error: ", err)
		return appErrors.ErrInternalServer
	}
	if affected == 0 {
		return appErrors.ErrChecklistNotFound
	}
	return nil
}

package presence

import (
	"context"
	"time"

	appErrors "github.com/crewhq/crewhq-backend/internal/errors"
	"github.com/crewhq/crewhq-backend/internal/identity"
	"github.com/sirupsen/logrus"
)

const (
	// onlineWindow is how recently a subject must have pinged to count as
	// online.
	onlineWindow = 90 * time.Second

	// maxOnlineResults caps the online-users listing.
	maxOnlineResults = 50
)

// Service provides business logic for presence tracking.
type Service struct {
	repo   Querier
	logger *logrus.Logger
	now    func() time.Time
}

// NewService creates a new presence Service.
// Used to inject dependencies and enable testability.
func NewService(repo Querier, logger *logrus.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// Ping records that a subject is active, snapshotting the resolved display
// fields and the page they are on. A failed ping is logged and swallowed:
// presence is best-effort and never fails the surrounding request.
func (s *Service) Ping(ctx context.Context, profile *identity.Profile, req PingRequest) {
	err := s.repo.UpsertEntry(ctx, UpsertEntryParams{
		Subject: profile.Subject,
		Label:   profile.DisplayName,
		Handle:  profile.Handle,
		Page:    req.Page,
	})
	if err != nil {
		s.logger.WithField("subject", profile.Subject).Warn("presence upsert failed: ", err)
	}
}

// ListOnline returns everyone seen inside the online window, newest first.
func (s *Service) ListOnline(ctx context.Context) ([]Entry, error) {
	cutoff := s.now().Add(-onlineWindow)
	entries, err := s.repo.ListSince(ctx, cutoff, maxOnlineResults)
	if err != nil {
		s.logger.Error("ListSince error: ", err)
		return nil, appErrors.ErrInternalServer
	}
	return entries, nil
}

package identity

import (
	"context"
	"database/sql"
	"errors"

	"github.com/crewhq/crewhq-backend/internal/auth/token"
	appErrors "github.com/crewhq/crewhq-backend/internal/errors"
	"github.com/sirupsen/logrus"
)

// Service provides identity resolution and persistence.
// Invoked once per authenticated request, before any business handler runs.
type Service struct {
	repo   Querier
	logger *logrus.Logger
}

// NewService creates a new identity Service.
// Used to inject dependencies and enable testability.
func NewService(repo Querier, logger *logrus.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ResolveAndPersist resolves the claim set and applies it to the store as a
// single atomic upsert, returning the profile row the store committed. The
// store is the arbiter under concurrency: the resolver computes the insert-
// branch values and the meaningful flag, and the statement's conflict branch
// decides whether they overwrite whatever row won the race.
func (s *Service) ResolveAndPersist(ctx context.Context, claims *token.Claims) (*Profile, error) {
	if claims == nil || claims.Subject == "" {
		return nil, appErrors.ErrMissingSubject
	}

	resolved := Resolve(claims, nil)
	profile, err := s.repo.UpsertProfile(ctx, UpsertProfileParams{
		Subject:        claims.Subject,
		Email:          claims.Email,
		DisplayName:    resolved.DisplayName,
		Handle:         resolved.Handle,
		PictureURL:     claims.Picture,
		NameMeaningful: resolved.NameMeaningful,
	})
	if err != nil {
		s.logger.WithField("subject", claims.Subject).Error("identity upsert failed: ", err)
		return nil, appErrors.ErrInternalServer
	}
	return &profile, nil
}

// GetProfile fetches the profile on file for a subject.
func (s *Service) GetProfile(ctx context.Context, subject string) (*Profile, error) {
	profile, err := s.repo.GetProfile(ctx, subject)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrNotFound
		}
		s.logger.Error("GetProfile error: ", err)
		return nil, appErrors.ErrInternalServer
	}
	return &profile, nil
}

// FallbackProfile builds an unpersisted profile straight from the claims.
// The auth middleware uses it when the identity upsert fails: failing to
// record presence is not a reason to fail the business request.
func FallbackProfile(claims *token.Claims) *Profile {
	resolved := Resolve(claims, nil)
	return &Profile{
		Subject:     claims.Subject,
		Email:       resolved.Email,
		DisplayName: resolved.DisplayName,
		Handle:      resolved.Handle,
		PictureURL:  resolved.PictureURL,
	}
}

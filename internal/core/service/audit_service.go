package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/learnhub/course-portal/internal/core/domain"
	"github.com/learnhub/course-portal/internal/core/ports"
)

// AuditTrailService persists sign-in/sign-out events dequeued by the
// dispatcher.
type AuditTrailService struct {
	repo   ports.AuditRepository
	logger zerolog.Logger
}

func NewAuditTrailService(repo ports.AuditRepository, logger zerolog.Logger) *AuditTrailService {
	return &AuditTrailService{repo: repo, logger: logger}
}

func (s *AuditTrailService) Process(ctx context.Context, event domain.AuthEvent) error {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}

	if err := s.repo.Insert(ctx, &event); err != nil {
		return err
	}

	s.logger.Debug().
		Str("user_id", event.UserID).
		Str("kind", string(event.Kind)).
		Str("provider", event.Provider).
		Msg("auth event recorded")
	return nil
}

package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/learnhub/course-portal/internal/core/domain"
	"github.com/learnhub/course-portal/internal/core/ports"
)

// CredentialService is the credential exchange: it turns raw credentials or a
// federated profile into a normalized Identity by delegating account
// ownership to the external backend.
type CredentialService struct {
	backend ports.BackendClient
	logger  zerolog.Logger
}

func NewCredentialService(backend ports.BackendClient, logger zerolog.Logger) *CredentialService {
	return &CredentialService{backend: backend, logger: logger}
}

// AuthenticateWithPassword exchanges email/password for an Identity via the
// backend login endpoint. Callers only ever see *domain.AuthenticationError
// or domain.ErrBackendUnavailable — raw transport errors stay inside the
// backend client.
func (s *CredentialService) AuthenticateWithPassword(ctx context.Context, email, password string) (*domain.Identity, error) {
	email = strings.TrimSpace(email)
	if !looksLikeEmail(email) || password == "" {
		return nil, &domain.AuthenticationError{}
	}

	identity, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("user_id", identity.ID).
		Str("role", identity.Role).
		Msg("credentials sign-in")
	return identity, nil
}

// AuthenticateWithGoogle reconciles a federated profile against the backend
// to obtain the account's canonical id and role. When reconciliation fails,
// sign-in still proceeds with a best-effort Identity carrying the default
// student role. This degraded mode mirrors the product's current behaviour;
// see DESIGN.md for the open question around it.
func (s *CredentialService) AuthenticateWithGoogle(ctx context.Context, profile domain.GoogleProfile) (*domain.Identity, error) {
	identity, err := s.backend.CheckGoogleUser(ctx, profile)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("email", profile.Email).
			Msg("google reconciliation failed, continuing with default role")
		fallback := domain.NewIdentity(profile.Sub, profile.Name, profile.Email, domain.RoleStudent, profile.Picture, "")
		return &fallback, nil
	}
	if identity == nil {
		// Backend reachable but no account record: same default-role path.
		fallback := domain.NewIdentity(profile.Sub, profile.Name, profile.Email, domain.RoleStudent, profile.Picture, "")
		return &fallback, nil
	}

	s.logger.Info().
		Str("user_id", identity.ID).
		Str("role", identity.Role).
		Msg("google sign-in")
	return identity, nil
}

// looksLikeEmail is a basic shape check; the backend remains the authority on
// whether the address belongs to an account.
func looksLikeEmail(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	return !strings.ContainsAny(s, " \t")
}

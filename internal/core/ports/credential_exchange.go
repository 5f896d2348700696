package ports

import (
	"context"

	"github.com/learnhub/course-portal/internal/core/domain"
)

// CredentialExchange converts raw credentials or a federated profile into a
// normalized Identity.
type CredentialExchange interface {
	AuthenticateWithPassword(ctx context.Context, email, password string) (*domain.Identity, error)
	AuthenticateWithGoogle(ctx context.Context, profile domain.GoogleProfile) (*domain.Identity, error)
}

package ports

import (
	"context"

	"github.com/learnhub/course-portal/internal/core/domain"
)

// BackendClient talks to the external backend API that owns user accounts.
type BackendClient interface {
	// Login exchanges credentials for an Identity. Backend-reported failures
	// come back as *domain.AuthenticationError; transport failures as
	// domain.ErrBackendUnavailable.
	Login(ctx context.Context, email, password string) (*domain.Identity, error)

	// CheckGoogleUser looks up or creates the account matching a federated
	// profile. Returns (nil, nil) when the backend has no matching record;
	// transport failures come back as domain.ErrReconciliationFailed.
	CheckGoogleUser(ctx context.Context, profile domain.GoogleProfile) (*domain.Identity, error)
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/learnhub/course-portal/internal/core/domain"
)

type stubBackend struct {
	loginFn func(ctx context.Context, email, password string) (*domain.Identity, error)
	checkFn func(ctx context.Context, profile domain.GoogleProfile) (*domain.Identity, error)
}

func (s *stubBackend) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubBackend) CheckGoogleUser(ctx context.Context, profile domain.GoogleProfile) (*domain.Identity, error) {
	return s.checkFn(ctx, profile)
}

func TestCredentialService_PasswordSuccess(t *testing.T) {
	stub := &stubBackend{
		loginFn: func(ctx context.Context, email, password string) (*domain.Identity, error) {
			if email != "a@b.com" || password != "pw" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			identity := domain.NewIdentity("u1", "A", email, "admin", "", "bt")
			return &identity, nil
		},
	}
	svc := NewCredentialService(stub, zerolog.Nop())

	identity, err := svc.AuthenticateWithPassword(context.Background(), "a@b.com", "pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.Role != domain.RoleAdmin {
		t.Fatalf("expected admin, got %q", identity.Role)
	}
}

func TestCredentialService_PasswordBackendRejects(t *testing.T) {
	stub := &stubBackend{
		loginFn: func(ctx context.Context, email, password string) (*domain.Identity, error) {
			return nil, &domain.AuthenticationError{Message: "Invalid credentials"}
		},
	}
	svc := NewCredentialService(stub, zerolog.Nop())

	_, err := svc.AuthenticateWithPassword(context.Background(), "a@b.com", "wrong")
	var authErr *domain.AuthenticationError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthenticationError, got %v", err)
	}
	if authErr.Error() != "Invalid credentials" {
		t.Fatalf("unexpected message: %q", authErr.Error())
	}
}

func TestCredentialService_PasswordInputValidation(t *testing.T) {
	stub := &stubBackend{
		loginFn: func(ctx context.Context, email, password string) (*domain.Identity, error) {
			t.Fatalf("backend should not be called")
			return nil, nil
		},
	}
	svc := NewCredentialService(stub, zerolog.Nop())

	cases := []struct{ email, password string }{
		{"", "pw"},
		{"a@b.com", ""},
		{"not-an-email", "pw"},
		{"@b.com", "pw"},
		{"a@", "pw"},
	}
	for _, tc := range cases {
		_, err := svc.AuthenticateWithPassword(context.Background(), tc.email, tc.password)
		var authErr *domain.AuthenticationError
		if !errors.As(err, &authErr) {
			t.Fatalf("email=%q password=%q: expected AuthenticationError, got %v", tc.email, tc.password, err)
		}
	}
}

func TestCredentialService_GoogleAdoptsBackendRecord(t *testing.T) {
	stub := &stubBackend{
		checkFn: func(ctx context.Context, profile domain.GoogleProfile) (*domain.Identity, error) {
			identity := domain.NewIdentity("db-id", profile.Name, profile.Email, "instructor", profile.Picture, "")
			return &identity, nil
		},
	}
	svc := NewCredentialService(stub, zerolog.Nop())

	identity, err := svc.AuthenticateWithGoogle(context.Background(), domain.GoogleProfile{
		Sub: "g-123", Email: "a@b.com", Name: "A",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.ID != "db-id" || identity.Role != domain.RoleInstructor {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestCredentialService_GoogleReconciliationFailureFallsBack(t *testing.T) {
	stub := &stubBackend{
		checkFn: func(ctx context.Context, profile domain.GoogleProfile) (*domain.Identity, error) {
			return nil, domain.ErrReconciliationFailed
		},
	}
	svc := NewCredentialService(stub, zerolog.Nop())

	identity, err := svc.AuthenticateWithGoogle(context.Background(), domain.GoogleProfile{
		Sub: "g-123", Email: "a@b.com", Name: "A", Picture: "p.png",
	})
	if err != nil {
		t.Fatalf("degraded mode must not error, got %v", err)
	}
	if identity.Role != domain.RoleStudent {
		t.Fatalf("expected student fallback, got %q", identity.Role)
	}
	if identity.ID != "g-123" || identity.Email != "a@b.com" {
		t.Fatalf("fallback identity should come from the profile: %+v", identity)
	}
}

func TestCredentialService_GoogleNoBackendRecordFallsBack(t *testing.T) {
	stub := &stubBackend{
		checkFn: func(ctx context.Context, profile domain.GoogleProfile) (*domain.Identity, error) {
			return nil, nil
		},
	}
	svc := NewCredentialService(stub, zerolog.Nop())

	identity, err := svc.AuthenticateWithGoogle(context.Background(), domain.GoogleProfile{Sub: "g-9", Email: "c@d.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.Role != domain.RoleStudent {
		t.Fatalf("expected student, got %q", identity.Role)
	}
}

package service

import (
	"testing"
	"time"

	"github.com/learnhub/course-portal/internal/core/domain"
)

func mintFor(t *testing.T, codec *SessionCodec, role string, now time.Time) string {
	t.Helper()
	identity := domain.NewIdentity("u1", "A", "a@example.com", role, "", "")
	raw, err := codec.Mint(identity, now)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	return raw
}

func TestAccessGate_PublicPathsAllowWithoutToken(t *testing.T) {
	gate := NewAccessGate(NewSessionCodec("secret", time.Hour))
	now := time.Now()

	paths := []string{
		"/",
		"/login",
		"/register",
		"/auth/login",
		"/auth/google/callback",
		"/courses",
		"/courses/abc123",
		"/about",
		"/contact",
		"/health/ready",
		"/metrics",
		"/favicon.ico",
		"/static/app.css",
	}
	for _, path := range paths {
		d := gate.Decide(path, "", now)
		if !d.Allow {
			t.Fatalf("expected allow for %q, got redirect to %q", path, d.RedirectTo)
		}
	}
}

func TestAccessGate_PublicPathIgnoresInvalidToken(t *testing.T) {
	gate := NewAccessGate(NewSessionCodec("secret", time.Hour))

	d := gate.Decide("/courses", "not-a-token", time.Now())
	if !d.Allow {
		t.Fatalf("expected allow, got redirect to %q", d.RedirectTo)
	}
}

func TestAccessGate_ProtectedPathWithoutToken(t *testing.T) {
	gate := NewAccessGate(NewSessionCodec("secret", time.Hour))

	d := gate.Decide("/dashboard/student", "", time.Now())
	if d.Allow {
		t.Fatalf("expected redirect")
	}
	if d.RedirectTo != "/login?callbackUrl=%2Fdashboard%2Fstudent" {
		t.Fatalf("unexpected redirect: %q", d.RedirectTo)
	}
}

func TestAccessGate_ProtectedPathWithExpiredToken(t *testing.T) {
	codec := NewSessionCodec("secret", time.Hour)
	gate := NewAccessGate(codec)
	minted := time.Now().Add(-2 * time.Hour)
	raw := mintFor(t, codec, domain.RoleStudent, minted)

	d := gate.Decide("/dashboard/student", raw, time.Now())
	if d.Allow {
		t.Fatalf("expected redirect for expired token")
	}
	if d.RedirectTo != "/login?callbackUrl=%2Fdashboard%2Fstudent" {
		t.Fatalf("unexpected redirect: %q", d.RedirectTo)
	}
}

func TestAccessGate_DashboardRootFansOutByRole(t *testing.T) {
	codec := NewSessionCodec("secret", time.Hour)
	gate := NewAccessGate(codec)
	now := time.Now()

	cases := []struct {
		role string
		want string
	}{
		{domain.RoleStudent, "/dashboard/student"},
		{domain.RoleInstructor, "/dashboard/instructor"},
		{domain.RoleAdmin, "/dashboard/admin"},
		{domain.RoleSuperAdmin, "/dashboard/admin"},
	}
	for _, tc := range cases {
		raw := mintFor(t, codec, tc.role, now)
		d := gate.Decide("/dashboard", raw, now)
		if d.Allow || d.RedirectTo != tc.want {
			t.Fatalf("role %s: expected redirect to %q, got allow=%v redirect=%q", tc.role, tc.want, d.Allow, d.RedirectTo)
		}
	}
}

func TestAccessGate_ForeignSubtreeRedirectsToOwnHome(t *testing.T) {
	codec := NewSessionCodec("secret", time.Hour)
	gate := NewAccessGate(codec)
	now := time.Now()

	cases := []struct {
		role string
		path string
		want string
	}{
		{domain.RoleStudent, "/dashboard/admin", "/dashboard/student"},
		{domain.RoleStudent, "/dashboard/admin/users", "/dashboard/student"},
		{domain.RoleStudent, "/dashboard/instructor", "/dashboard/student"},
		{domain.RoleAdmin, "/dashboard/student", "/dashboard/admin"},
		{domain.RoleInstructor, "/dashboard/admin", "/dashboard/instructor"},
	}
	for _, tc := range cases {
		raw := mintFor(t, codec, tc.role, now)
		d := gate.Decide(tc.path, raw, now)
		if d.Allow {
			t.Fatalf("role %s on %s: expected redirect", tc.role, tc.path)
		}
		if d.RedirectTo != tc.want {
			t.Fatalf("role %s on %s: expected %q, got %q", tc.role, tc.path, tc.want, d.RedirectTo)
		}
	}
}

func TestAccessGate_OwnSubtreeAllowed(t *testing.T) {
	codec := NewSessionCodec("secret", time.Hour)
	gate := NewAccessGate(codec)
	now := time.Now()

	cases := []struct {
		role string
		path string
	}{
		{domain.RoleStudent, "/dashboard/student"},
		{domain.RoleInstructor, "/dashboard/instructor"},
		{domain.RoleAdmin, "/dashboard/admin"},
		{domain.RoleSuperAdmin, "/dashboard/admin/users"},
	}
	for _, tc := range cases {
		raw := mintFor(t, codec, tc.role, now)
		d := gate.Decide(tc.path, raw, now)
		if !d.Allow {
			t.Fatalf("role %s on %s: expected allow, got redirect to %q", tc.role, tc.path, d.RedirectTo)
		}
		if d.Token == nil || d.Token.Identity.Role != tc.role {
			t.Fatalf("expected token with role %s attached", tc.role)
		}
	}
}

func TestAccessGate_Deterministic(t *testing.T) {
	codec := NewSessionCodec("secret", time.Hour)
	gate := NewAccessGate(codec)
	now := time.Now()
	raw := mintFor(t, codec, domain.RoleStudent, now)

	first := gate.Decide("/dashboard/admin", raw, now)
	for i := 0; i < 5; i++ {
		d := gate.Decide("/dashboard/admin", raw, now)
		if d.Allow != first.Allow || d.RedirectTo != first.RedirectTo {
			t.Fatalf("decision not deterministic")
		}
	}
}

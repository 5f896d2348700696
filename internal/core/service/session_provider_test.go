package service

import (
	"testing"
	"time"
)

func TestSessionProvider_ZeroValueIsLoading(t *testing.T) {
	var sess Session
	if sess.State != StateLoading {
		t.Fatalf("expected loading, got %v", sess.State)
	}
	if sess.State.String() != "loading" {
		t.Fatalf("unexpected string: %q", sess.State.String())
	}
}

func TestSessionProvider_ResolvesAuthenticated(t *testing.T) {
	codec := NewSessionCodec("secret", time.Hour)
	provider := NewSessionProvider(codec)
	now := time.Now()
	raw := mintFor(t, codec, "admin", now)

	sess := provider.Resolve(raw, now)
	if sess.State != StateAuthenticated {
		t.Fatalf("expected authenticated, got %v", sess.State)
	}
	if sess.Identity == nil || sess.Identity.Role != "admin" {
		t.Fatalf("unexpected identity: %+v", sess.Identity)
	}
}

func TestSessionProvider_ResolvesUnauthenticated(t *testing.T) {
	codec := NewSessionCodec("secret", time.Hour)
	provider := NewSessionProvider(codec)

	for _, raw := range []string{"", "garbage"} {
		sess := provider.Resolve(raw, time.Now())
		if sess.State != StateUnauthenticated {
			t.Fatalf("expected unauthenticated for %q, got %v", raw, sess.State)
		}
		if sess.Identity != nil {
			t.Fatalf("expected nil identity")
		}
	}
}

func TestSessionProvider_ExpiredIsUnauthenticated(t *testing.T) {
	codec := NewSessionCodec("secret", time.Hour)
	provider := NewSessionProvider(codec)
	raw := mintFor(t, codec, "student", time.Now().Add(-2*time.Hour))

	sess := provider.Resolve(raw, time.Now())
	if sess.State != StateUnauthenticated {
		t.Fatalf("expected unauthenticated, got %v", sess.State)
	}
}

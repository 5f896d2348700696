package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/learnhub/course-portal/internal/core/domain"
)

func testIdentity() domain.Identity {
	return domain.NewIdentity("u1", "Alice", "alice@example.com", "admin", "https://cdn.example.com/a.png", "bt-123")
}

func TestSessionCodec_RoundTrip(t *testing.T) {
	codec := NewSessionCodec("secret", time.Hour)
	now := time.Now()

	raw, err := codec.Mint(testIdentity(), now)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	tok, err := codec.Verify(raw, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	if tok.Identity != testIdentity() {
		t.Fatalf("identity mismatch: %+v", tok.Identity)
	}
	if tok.TokenID == "" {
		t.Fatalf("expected a token id")
	}
}

func TestSessionCodec_RoleDefaultsOnVerify(t *testing.T) {
	codec := NewSessionCodec("secret", time.Hour)
	now := time.Now()

	identity := domain.Identity{ID: "u2", Name: "B", Email: "b@example.com", Role: "wizard"}
	raw, err := codec.Mint(identity, now)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	tok, err := codec.Verify(raw, now)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if tok.Identity.Role != domain.RoleStudent {
		t.Fatalf("expected student, got %q", tok.Identity.Role)
	}
}

func TestSessionCodec_WrongSecret(t *testing.T) {
	now := time.Now()
	raw, err := NewSessionCodec("secret-a", time.Hour).Mint(testIdentity(), now)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := NewSessionCodec("secret-b", time.Hour).Verify(raw, now); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestSessionCodec_TamperedPayload(t *testing.T) {
	codec := NewSessionCodec("secret", time.Hour)
	now := time.Now()

	raw, err := codec.Mint(testIdentity(), now)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape")
	}
	// Flip a character in the payload; the signature no longer matches.
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := codec.Verify(tampered, now); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestSessionCodec_Malformed(t *testing.T) {
	codec := NewSessionCodec("secret", time.Hour)
	for _, raw := range []string{"", "garbage", "a.b", "a.b.c"} {
		if _, err := codec.Verify(raw, time.Now()); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid for %q, got %v", raw, err)
		}
	}
}

func TestSessionCodec_ExpiryBoundary(t *testing.T) {
	ttl := time.Hour
	codec := NewSessionCodec("secret", ttl)
	minted := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	raw, err := codec.Mint(testIdentity(), minted)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	// One second before expiry the token is still valid.
	if _, err := codec.Verify(raw, minted.Add(ttl-time.Second)); err != nil {
		t.Fatalf("expected valid before expiry, got %v", err)
	}

	// Exactly at the expiry instant the token is already invalid.
	if _, err := codec.Verify(raw, minted.Add(ttl)); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid at expiry, got %v", err)
	}

	if _, err := codec.Verify(raw, minted.Add(ttl+time.Hour)); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid after expiry, got %v", err)
	}
}

func TestSessionCodec_DefaultTTL(t *testing.T) {
	codec := NewSessionCodec("secret", 0)
	if codec.TTL() != 30*24*time.Hour {
		t.Fatalf("expected 30 day default, got %v", codec.TTL())
	}
}

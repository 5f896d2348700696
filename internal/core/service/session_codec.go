package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/learnhub/course-portal/internal/core/domain"
)

const defaultSessionTTL = 30 * 24 * time.Hour

// SessionCodec mints and verifies HS256-signed session tokens carrying a
// serialized Identity. Tokens are self-contained: verification is a local
// signature check plus expiry, no backend round-trip.
type SessionCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionCodec(secret string, ttl time.Duration) *SessionCodec {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionCodec{secret: []byte(secret), ttl: ttl}
}

func (c *SessionCodec) TTL() time.Duration { return c.ttl }

type sessionClaims struct {
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	Role         string `json:"role,omitempty"`
	Picture      string `json:"picture,omitempty"`
	BackendToken string `json:"bat,omitempty"`
	jwt.RegisteredClaims
}

// Mint signs a new token for the identity. The password never appears in the
// claims; the optional backend access token rides along so handlers can call
// the backend on the user's behalf.
func (c *SessionCodec) Mint(identity domain.Identity, now time.Time) (string, error) {
	claims := sessionClaims{
		Name:         identity.Name,
		Email:        identity.Email,
		Role:         identity.Role,
		Picture:      identity.AvatarURL,
		BackendToken: identity.BackendToken,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify decodes and validates a raw token. Every failure mode — bad
// signature, structural garbage, expiry — collapses to domain.ErrTokenInvalid
// so callers cannot accidentally fail open on a distinction they should not
// care about. A token presented exactly at its expiry instant is invalid.
func (c *SessionCodec) Verify(raw string, now time.Time) (*domain.SessionToken, error) {
	claims := &sessionClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil || !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}
	if claims.ExpiresAt == nil || !now.Before(claims.ExpiresAt.Time) {
		return nil, domain.ErrTokenInvalid
	}

	identity := domain.NewIdentity(
		claims.Subject,
		claims.Name,
		claims.Email,
		claims.Role,
		claims.Picture,
		claims.BackendToken,
	)

	tok := &domain.SessionToken{
		Identity:  identity,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		tok.IssuedAt = claims.IssuedAt.Time
	}
	return tok, nil
}

package ports

import (
	"time"

	"github.com/learnhub/course-portal/internal/core/domain"
)

// SessionCodec mints and verifies signed session tokens. Verification is a
// local signature check; it never touches the network.
type SessionCodec interface {
	Mint(identity domain.Identity, now time.Time) (string, error)
	// Verify returns domain.ErrTokenInvalid for malformed, forged or expired
	// tokens. Exactly at the expiry instant the token is already invalid.
	Verify(raw string, now time.Time) (*domain.SessionToken, error)
	TTL() time.Duration
}

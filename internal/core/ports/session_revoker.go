package ports

import (
	"context"
	"time"
)

// SessionRevoker invalidates minted tokens ahead of their natural expiry.
// Entries only need to live until the token would have expired anyway.
type SessionRevoker interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore invalidates session tokens ahead of their natural expiry,
// backed by Redis. Key format: revoked:<token_id>. Entries expire when the
// token itself would have, so the store never grows beyond the live-token set.
type RevocationStore struct {
	client *redis.Client
}

// NewRevocationStore creates a RevocationStore wrapping the given Redis client.
func NewRevocationStore(client *redis.Client) *RevocationStore {
	return &RevocationStore{client: client}
}

// Revoke marks a token id as invalid until the token's own expiry. Tokens
// already past expiry need no entry at all.
func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, s.key(tokenID), "1", ttl).Err()
}

// IsRevoked reports whether a token id has been explicitly invalidated.
func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (s *RevocationStore) key(tokenID string) string {
	return fmt.Sprintf("revoked:%s", tokenID)
}

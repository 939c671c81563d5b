package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevokedStore is a Redis denylist of token IDs. Tokens are stateless, so
// logout parks the jti here until the token would have expired anyway.
type RevokedStore struct {
	rdb *redis.Client
}

func NewRevokedStore(rdb *redis.Client) *RevokedStore { return &RevokedStore{rdb: rdb} }

func key(jti string) string { return fmt.Sprintf("token:revoked:%s", jti) }

// Revoke denylists the token ID until its expiry time.
func (s *RevokedStore) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil // already expired, nothing to deny
	}
	return s.rdb.Set(ctx, key(jti), "1", ttl).Err()
}

func (s *RevokedStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	_, err := s.rdb.Get(ctx, key(jti)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

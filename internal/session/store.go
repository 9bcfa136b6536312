// Package session maps browser sessions to their cart identity. The cart
// itself lives on the commerce platform; only the sessionID -> cartID
// pointer is kept here, in Redis, so a returning visitor gets the same
// cart back.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "cart_session:"

// Store is the Redis-backed cart-session store
type Store struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// New creates a cart-session store. A nil Redis client is allowed: every
// lookup then misses, which means every browser session starts cartless.
func New(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &Store{rdb: rdb, ttl: ttl, logger: logger}
}

// CartID returns the cart bound to the session, or "" when there is none
func (s *Store) CartID(ctx context.Context, sessionID string) (string, error) {
	if s.rdb == nil {
		return "", nil
	}
	val, err := s.rdb.Get(ctx, keyPrefix+sessionID).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get cart session: %w", err)
	}
	return val, nil
}

// SetCartID binds a cart to the session and refreshes the TTL
func (s *Store) SetCartID(ctx context.Context, sessionID, cartID string) error {
	if s.rdb == nil {
		s.logger.Debug("Session store disabled, cart ID not persisted", zap.String("cart_id", cartID))
		return nil
	}
	if err := s.rdb.Set(ctx, keyPrefix+sessionID, cartID, s.ttl).Err(); err != nil {
		return fmt.Errorf("set cart session: %w", err)
	}
	return nil
}

// Clear unbinds the session's cart (e.g. after checkout completes)
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	if s.rdb == nil {
		return nil
	}
	if err := s.rdb.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("clear cart session: %w", err)
	}
	return nil
}

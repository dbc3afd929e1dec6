package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	idempotencyTTL = 24 * time.Hour
	// reservationTTL bounds how long a crashed write can hold a key.
	reservationTTL = 30 * time.Second
	pendingMarker  = "pending"
)

// IdempotencyStore maps Idempotency-Key headers to the time entry they created.
// Key format: idem:time-entry:<key>. The value is pendingMarker while the
// first write is in flight, then the entry id.
type IdempotencyStore struct {
	client         *redis.Client
	ttl            time.Duration
	reservationTTL time.Duration
}

// NewIdempotencyStore creates an IdempotencyStore wrapping the given Redis client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client, ttl: idempotencyTTL, reservationTTL: reservationTTL}
}

// Reserve claims key with SETNX. When the key is taken it returns the recorded
// entry id, or "" while the holder has not completed.
func (s *IdempotencyStore) Reserve(ctx context.Context, key string) (string, bool, error) {
	ok, err := s.client.SetNX(ctx, s.key(key), pendingMarker, s.reservationTTL).Result()
	if err != nil {
		return "", false, fmt.Errorf("idempotency reserve: %w", err)
	}
	if ok {
		return "", true, nil
	}

	id, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		// Expired between SETNX and GET; the caller retries.
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("idempotency lookup: %w", err)
	}
	if id == pendingMarker {
		return "", false, nil
	}
	return id, false, nil
}

// Complete replaces the reservation with entryID for the full TTL.
func (s *IdempotencyStore) Complete(ctx context.Context, key, entryID string) error {
	if err := s.client.Set(ctx, s.key(key), entryID, s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency complete: %w", err)
	}
	return nil
}

// Release drops the reservation so the key can be retried.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("idempotency release: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) key(key string) string {
	return fmt.Sprintf("idem:time-entry:%s", key)
}

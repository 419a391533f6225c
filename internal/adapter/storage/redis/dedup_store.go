package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// DedupStore implements ports.DedupStore using Redis SET NX. Redis itself
// is the durable storage, so every mark is persisted as it happens and
// Persist is a no-op.
type DedupStore struct {
	client *goredis.Client
	prefix string
}

// NewDedupStore creates a Redis-backed processed-payments store.
func NewDedupStore(client *goredis.Client) *DedupStore {
	return &DedupStore{
		client: client,
		prefix: "processed:",
	}
}

// Contains reports whether the payment id has already been processed.
func (s *DedupStore) Contains(ctx context.Context, paymentID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.prefix+paymentID).Result()
	if err != nil {
		return false, fmt.Errorf("redis dedup exists: %w", err)
	}
	return n > 0, nil
}

// MarkProcessed atomically checks and inserts via SET NX. No TTL:
// processed ids are kept forever.
func (s *DedupStore) MarkProcessed(ctx context.Context, paymentID string) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.prefix+paymentID, 1, 0).Result()
	if err != nil {
		return false, fmt.Errorf("redis dedup setnx: %w", err)
	}
	return ok, nil
}

// Persist is a no-op: every mark is already durable in Redis.
func (s *DedupStore) Persist() error {
	return nil
}

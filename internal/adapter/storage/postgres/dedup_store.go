package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// DedupStore implements ports.DedupStore on PostgreSQL. Expected schema:
//
//	CREATE TABLE processed_payments (
//	    payment_id TEXT PRIMARY KEY,
//	    created_at TIMESTAMPTZ NOT NULL
//	);
//
// Every mark is durable as it happens, so Persist is a no-op.
type DedupStore struct {
	pool Pool
}

// NewDedupStore creates a PostgreSQL-backed processed-payments store.
func NewDedupStore(pool Pool) *DedupStore {
	return &DedupStore{pool: pool}
}

// Contains reports whether the payment id has already been processed.
func (s *DedupStore) Contains(ctx context.Context, paymentID string) (bool, error) {
	var one int
	err := s.pool.QueryRow(ctx,
		`SELECT 1 FROM processed_payments WHERE payment_id = $1`, paymentID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("dedup contains: %w", err)
	}
	return true, nil
}

// MarkProcessed atomically checks and inserts: the primary key makes the
// conflict path the "already processed" signal.
func (s *DedupStore) MarkProcessed(ctx context.Context, paymentID string) (bool, error) {
	ct, err := s.pool.Exec(ctx,
		`INSERT INTO processed_payments (payment_id, created_at)
		 VALUES ($1, $2)
		 ON CONFLICT (payment_id) DO NOTHING`,
		paymentID, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("dedup mark: %w", err)
	}
	return ct.RowsAffected() == 1, nil
}

// Persist is a no-op: every mark is already durable.
func (s *DedupStore) Persist() error {
	return nil
}

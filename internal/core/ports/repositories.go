package ports

import (
	"context"

	"pix-notify/internal/core/domain"
)

// DedupStore is the persisted set of payment identifiers already acted upon.
// Membership is the only semantic; identifiers are never removed within the
// process lifetime.
type DedupStore interface {
	// Contains reports whether the payment id has already been processed.
	Contains(ctx context.Context, paymentID string) (bool, error)

	// MarkProcessed atomically checks and inserts the payment id.
	// It returns true if the id was new (caller owns the notification),
	// false if the id was already present (no-op). Implementations must
	// make the check-then-insert a single critical section so that no two
	// concurrent callers can both observe "new" for the same id.
	MarkProcessed(ctx context.Context, paymentID string) (bool, error)

	// Persist flushes the full set to durable storage. Best-effort: a
	// failure is the caller's to log, never fatal. Backends that are
	// durable per write return nil.
	Persist() error
}

// DeviceRegistry tracks last-seen state and per-device event/log buffers.
// Unknown device ids are created implicitly; devices are never deleted.
type DeviceRegistry interface {
	RecordHeartbeat(ctx context.Context, deviceID string, hb domain.Heartbeat) error
	RecordEvent(ctx context.Context, deviceID string, ev domain.DeviceEvent) error
	RecordLog(ctx context.Context, deviceID string, line string) error

	// GetStatus returns the device snapshot with the online flag derived
	// at read time, or (nil, nil) when the device id is unknown.
	GetStatus(ctx context.Context, deviceID string) (*domain.DeviceStatus, error)

	// ListStatuses returns a full snapshot, sorted by device id.
	ListStatuses(ctx context.Context) ([]domain.DeviceStatus, error)
}

// HealthChecker checks external dependency health.
type HealthChecker interface {
	// Ping verifies connectivity. Returns nil if healthy.
	Ping(ctx context.Context) error
	// Name returns the dependency name (e.g., "postgresql", "redis").
	Name() string
}

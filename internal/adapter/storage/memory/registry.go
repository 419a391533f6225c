package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"pix-notify/internal/core/domain"
)

// maxBufferedEntries caps per-device event and log buffers so a chatty
// device cannot grow memory without bound.
const maxBufferedEntries = 100

// DeviceRegistry is an in-process implementation of ports.DeviceRegistry.
// State is lost on restart; devices re-register on their next heartbeat.
type DeviceRegistry struct {
	mu        sync.RWMutex
	devices   map[string]*domain.Device
	staleness time.Duration
	now       func() time.Time
}

// NewDeviceRegistry creates an empty registry. A non-positive staleness
// falls back to the default window.
func NewDeviceRegistry(staleness time.Duration) *DeviceRegistry {
	if staleness <= 0 {
		staleness = domain.DefaultStalenessWindow
	}
	return &DeviceRegistry{
		devices:   make(map[string]*domain.Device),
		staleness: staleness,
		now:       time.Now,
	}
}

func (r *DeviceRegistry) getOrCreateLocked(deviceID string) *domain.Device {
	d, ok := r.devices[deviceID]
	if !ok {
		d = &domain.Device{DeviceID: deviceID}
		r.devices[deviceID] = d
	}
	return d
}

// RecordHeartbeat upserts the device and refreshes its last-seen instant.
// Optional heartbeat fields only overwrite stored state when reported.
func (r *DeviceRegistry) RecordHeartbeat(ctx context.Context, deviceID string, hb domain.Heartbeat) error {
	if deviceID == "" {
		return fmt.Errorf("empty device id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	d := r.getOrCreateLocked(deviceID)
	d.LastSeenAt = r.now()
	if hb.ReportedIP != "" {
		d.ReportedIP = hb.ReportedIP
	}
	if hb.SignalStrength != nil {
		d.SignalStrength = hb.SignalStrength
	}
	if hb.UptimeMs != nil {
		d.UptimeMs = hb.UptimeMs
	}
	if hb.DebugEnabled != nil {
		d.DebugEnabled = *hb.DebugEnabled
	}
	if hb.LastPaymentID != "" {
		d.LastPaymentID = hb.LastPaymentID
	}
	return nil
}

// RecordEvent appends to the device's event buffer. An event also counts
// as contact, so the last-seen instant is refreshed.
func (r *DeviceRegistry) RecordEvent(ctx context.Context, deviceID string, ev domain.DeviceEvent) error {
	if deviceID == "" {
		return fmt.Errorf("empty device id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	d := r.getOrCreateLocked(deviceID)
	d.LastSeenAt = r.now()
	if ev.Timestamp.IsZero() {
		ev.Timestamp = d.LastSeenAt
	}
	d.Events = append(d.Events, ev)
	if len(d.Events) > maxBufferedEntries {
		d.Events = d.Events[len(d.Events)-maxBufferedEntries:]
	}
	return nil
}

// RecordLog appends a free-text line to the device's log buffer.
func (r *DeviceRegistry) RecordLog(ctx context.Context, deviceID string, line string) error {
	if deviceID == "" {
		return fmt.Errorf("empty device id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	d := r.getOrCreateLocked(deviceID)
	d.LastSeenAt = r.now()
	d.Messages = append(d.Messages, domain.DeviceLogLine{Timestamp: d.LastSeenAt, Line: line})
	if len(d.Messages) > maxBufferedEntries {
		d.Messages = d.Messages[len(d.Messages)-maxBufferedEntries:]
	}
	return nil
}

func (r *DeviceRegistry) snapshotLocked(d *domain.Device, now time.Time) domain.DeviceStatus {
	events := make([]domain.DeviceEvent, len(d.Events))
	copy(events, d.Events)
	messages := make([]domain.DeviceLogLine, len(d.Messages))
	copy(messages, d.Messages)

	return domain.DeviceStatus{
		DeviceID:       d.DeviceID,
		Online:         d.OnlineAt(now, r.staleness),
		LastSeenAt:     d.LastSeenAt,
		ReportedIP:     d.ReportedIP,
		SignalStrength: d.SignalStrength,
		UptimeMs:       d.UptimeMs,
		DebugEnabled:   d.DebugEnabled,
		LastPaymentID:  d.LastPaymentID,
		Events:         events,
		Messages:       messages,
	}
}

// GetStatus returns the device snapshot, or (nil, nil) when unknown.
func (r *DeviceRegistry) GetStatus(ctx context.Context, deviceID string) (*domain.DeviceStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.devices[deviceID]
	if !ok {
		return nil, nil
	}
	st := r.snapshotLocked(d, r.now())
	return &st, nil
}

// ListStatuses returns all device snapshots sorted by device id, with the
// online flag derived against a single read-time instant.
func (r *DeviceRegistry) ListStatuses(ctx context.Context) ([]domain.DeviceStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := r.now()
	statuses := make([]domain.DeviceStatus, 0, len(r.devices))
	for _, d := range r.devices {
		statuses = append(statuses, r.snapshotLocked(d, now))
	}
	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].DeviceID < statuses[j].DeviceID
	})
	return statuses, nil
}

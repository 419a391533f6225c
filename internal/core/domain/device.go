package domain

import "time"

// DefaultStalenessWindow is how long a device stays "online" after its
// last heartbeat.
const DefaultStalenessWindow = 3 * time.Minute

// Heartbeat carries the metadata a device reports on each check-in.
// Pointer fields are optional; nil means "not reported this time" and the
// previously stored value is kept.
type Heartbeat struct {
	ReportedIP     string
	SignalStrength *float64
	UptimeMs       *int64
	DebugEnabled   *bool
	LastPaymentID  string
}

// DeviceEvent is one entry in a device's event log.
type DeviceEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	PaymentID string    `json:"payment_id,omitempty"`
	Raw       string    `json:"raw,omitempty"`
}

// DeviceLogLine is one free-text log line reported by a device.
type DeviceLogLine struct {
	Timestamp time.Time `json:"timestamp"`
	Line      string    `json:"line"`
}

// Device is the registry's record of one playback endpoint. Devices are
// created implicitly on first contact and never deleted; they age out of
// "online" via the staleness window instead.
type Device struct {
	DeviceID       string
	LastSeenAt     time.Time
	ReportedIP     string
	SignalStrength *float64
	UptimeMs       *int64
	DebugEnabled   bool
	LastPaymentID  string
	Events         []DeviceEvent
	Messages       []DeviceLogLine
}

// OnlineAt reports whether the device counts as online at the given
// instant: strictly less than the staleness window since the last heartbeat.
func (d *Device) OnlineAt(now time.Time, staleness time.Duration) bool {
	return now.Sub(d.LastSeenAt) < staleness
}

// DeviceStatus is the read-side snapshot of a device, with the derived
// online flag computed at read time.
type DeviceStatus struct {
	DeviceID       string          `json:"device_id"`
	Online         bool            `json:"online"`
	LastSeenAt     time.Time       `json:"last_seen_at"`
	ReportedIP     string          `json:"reported_ip,omitempty"`
	SignalStrength *float64        `json:"signal_strength,omitempty"`
	UptimeMs       *int64          `json:"uptime_ms,omitempty"`
	DebugEnabled   bool            `json:"debug_enabled"`
	LastPaymentID  string          `json:"last_payment_id,omitempty"`
	Events         []DeviceEvent   `json:"events"`
	Messages       []DeviceLogLine `json:"messages"`
}

package dto

// HeartbeatRequest is the device check-in payload. Optional fields are
// pointers so "absent" and "zero" stay distinguishable.
type HeartbeatRequest struct {
	DeviceID       string   `json:"device_id" binding:"required"`
	IP             string   `json:"ip"`
	SignalStrength *float64 `json:"signal_strength"`
	UptimeMs       *int64   `json:"uptime_ms"`
	Debug          *bool    `json:"debug"`
	LastPaymentID  string   `json:"last_payment_id"`
}

// DeviceEventRequest reports one structured device event, e.g. a completed
// playback.
type DeviceEventRequest struct {
	DeviceID  string `json:"device_id" binding:"required"`
	Type      string `json:"type" binding:"required"`
	PaymentID string `json:"payment_id"`
	Raw       string `json:"raw"`
}

// DeviceLogRequest reports one free-text device log line.
type DeviceLogRequest struct {
	DeviceID string `json:"device_id" binding:"required"`
	Line     string `json:"line" binding:"required"`
}

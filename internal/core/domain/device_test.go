package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDevice_OnlineAt_Boundary(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		lastSeen time.Time
		online   bool
	}{
		{"just seen", now, true},
		{"2m59s ago is online", now.Add(-(2*time.Minute + 59*time.Second)), true},
		{"exactly 3m ago is offline", now.Add(-3 * time.Minute), false},
		{"3m01s ago is offline", now.Add(-(3*time.Minute + time.Second)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Device{DeviceID: "esp-01", LastSeenAt: tt.lastSeen}
			assert.Equal(t, tt.online, d.OnlineAt(now, DefaultStalenessWindow))
		})
	}
}

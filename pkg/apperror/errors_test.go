package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_ErrorString(t *testing.T) {
	err := New("GW_001", "Failed to confirm payment with gateway", http.StatusBadGateway)
	assert.Equal(t, "[GW_001] Failed to confirm payment with gateway", err.Error())

	inner := errors.New("connection refused")
	wrapped := Wrap("NTF_001", "Device notification failed", http.StatusBadGateway, inner)
	assert.Contains(t, wrapped.Error(), "connection refused")
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("dial tcp: timeout")
	wrapped := ErrGatewayFetch(inner)

	assert.True(t, errors.Is(wrapped, inner))
}

func TestErrorConstructors_HTTPStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		status int
	}{
		{"no payment id", ErrNoPaymentID(), http.StatusBadRequest},
		{"missing credential", ErrMissingCredential("gateway access token"), http.StatusInternalServerError},
		{"gateway fetch", ErrGatewayFetch(errors.New("x")), http.StatusBadGateway},
		{"notify failed", ErrNotifyFailed(errors.New("x")), http.StatusBadGateway},
		{"notifier unconfigured", ErrNotifierUnconfigured(), http.StatusInternalServerError},
		{"bad device secret", ErrBadDeviceSecret(), http.StatusUnauthorized},
		{"missing device id", ErrMissingDeviceID(), http.StatusBadRequest},
		{"device not found", ErrDeviceNotFound(), http.StatusNotFound},
		{"rate limit", ErrRateLimitExceeded(), http.StatusTooManyRequests},
		{"internal", InternalError(errors.New("x")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.NotEmpty(t, tt.err.Code)
		})
	}
}

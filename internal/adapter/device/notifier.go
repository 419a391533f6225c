package device

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pix-notify/config"
	"pix-notify/pkg/apperror"

	"github.com/rs/zerolog"
)

// HTTPClient allows mocking the HTTP transport in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Notifier delivers "play" commands to the destination device over HTTP
// with bounded retries. Delivery is the only side effect; the caller owns
// all bookkeeping.
type Notifier struct {
	playURL     string
	authToken   string
	maxAttempts int
	retryPause  time.Duration
	client      HTTPClient
	logger      zerolog.Logger
}

// NewNotifier creates a device notifier. A nil client gets a default HTTP
// client with the configured timeout.
func NewNotifier(cfg config.DeviceConfig, client HTTPClient, logger zerolog.Logger) *Notifier {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	playURL := ""
	if cfg.BaseURL != "" {
		playURL = strings.TrimRight(cfg.BaseURL, "/") + cfg.PlayPath
	}

	return &Notifier{
		playURL:     playURL,
		authToken:   cfg.AuthToken,
		maxAttempts: cfg.MaxAttempts,
		retryPause:  cfg.RetryPause,
		client:      client,
		logger:      logger.With().Str("component", "device_notifier").Logger(),
	}
}

// Notify posts the payment id to the device's play endpoint. Each attempt
// is independent; attempts stop on the first 2xx response. An unconfigured
// base URL means zero attempts and an immediate error.
func (n *Notifier) Notify(ctx context.Context, paymentID string) error {
	if n.playURL == "" {
		return apperror.ErrNotifierUnconfigured()
	}

	payload, err := json.Marshal(map[string]string{"payment_id": paymentID})
	if err != nil {
		return apperror.InternalError(err)
	}

	var lastErr error
	for attempt := 1; attempt <= n.maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(n.retryPause):
			case <-ctx.Done():
				return apperror.ErrNotifyFailed(ctx.Err())
			}
		}

		lastErr = n.deliver(ctx, payload)
		if lastErr == nil {
			n.logger.Info().
				Str("payment_id", paymentID).
				Int("attempt", attempt).
				Msg("device notified")
			return nil
		}

		n.logger.Warn().
			Err(lastErr).
			Str("payment_id", paymentID).
			Int("attempt", attempt).
			Int("max_attempts", n.maxAttempts).
			Msg("device notification attempt failed")
	}

	return apperror.ErrNotifyFailed(lastErr)
}

func (n *Notifier) deliver(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.playURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if n.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+n.authToken)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("device request: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("device returned status %d", resp.StatusCode)
	}
	return nil
}

package integration

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestConcurrentWebhookDeliveries hammers the webhook endpoint with the
// same payment id from many goroutines. Exactly one delivery may win the
// dedup race and notify the device; every other caller must see
// already_processed.
func TestConcurrentWebhookDeliveries(t *testing.T) {
	app := newTestApp(t)
	app.addPayment("3001", "approved", "pix")

	const deliveries = 16
	var wg sync.WaitGroup
	results := make([]map[string]any, deliveries)

	for i := 0; i < deliveries; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			_, body := app.postWebhook(t, "3001")
			results[idx] = body
		}(i)
	}
	wg.Wait()

	var notified, alreadyProcessed int
	for _, body := range results {
		switch {
		case body["payment_id"] == "3001" && body["note"] == "already_processed":
			alreadyProcessed++
		case body["payment_id"] == "3001" && body["ok"] == true:
			notified++
		}
	}

	assert.Equal(t, 1, notified, "exactly one delivery wins the dedup race")
	assert.Equal(t, deliveries-1, alreadyProcessed)
	assert.Equal(t, int64(1), app.notifyCount.Load(), "the device hears about a payment once")
}

// TestConcurrentDistinctPayments checks that unrelated ids do not contend.
func TestConcurrentDistinctPayments(t *testing.T) {
	app := newTestApp(t)
	ids := []string{"4001", "4002", "4003", "4004", "4005"}
	for _, id := range ids {
		app.addPayment(id, "approved", "pix")
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(paymentID string) {
			defer wg.Done()
			_, body := app.postWebhook(t, paymentID)
			assert.Equal(t, true, body["ok"])
		}(id)
	}
	wg.Wait()

	assert.Equal(t, int64(len(ids)), app.notifyCount.Load())
}

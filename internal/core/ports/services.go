package ports

import (
	"context"

	"pix-notify/internal/core/domain"
)

// PaymentGateway is the payment gateway collaborator: confirm one payment
// or search the most recent page.
type PaymentGateway interface {
	// FetchPayment returns the full record for a payment id. A transport
	// failure, a non-200 response or an unparsable body is an error.
	FetchPayment(ctx context.Context, paymentID string) (*domain.PaymentRecord, error)

	// SearchRecent returns the newest page of payments, gateway-side
	// sorted by creation date descending.
	SearchRecent(ctx context.Context) ([]domain.PaymentRecord, error)
}

// DeviceNotifier delivers a "play" command to the destination device with
// bounded retries. It mutates nothing else.
type DeviceNotifier interface {
	Notify(ctx context.Context, paymentID string) error
}

// OutcomeCode is the terminal state of one pipeline run for one payment.
// The string values double as the "reason"/"note" fields of the webhook
// response envelope.
type OutcomeCode string

const (
	OutcomeNotified         OutcomeCode = "notified"
	OutcomeNoPaymentID      OutcomeCode = "no_payment_id"
	OutcomeConfirmFailed    OutcomeCode = "mp_fetch_failed"
	OutcomeNotApproved      OutcomeCode = "not_approved"
	OutcomeNotPix           OutcomeCode = "not_pix"
	OutcomeAlreadyProcessed OutcomeCode = "already_processed"
	OutcomeNotifyFailed     OutcomeCode = "esp_notify_failed"
	OutcomeInternalError    OutcomeCode = "internal_error"
)

// PipelineResult is what one pipeline run reports back to its adapter.
type PipelineResult struct {
	Code          OutcomeCode
	PaymentID     string
	Status        string // set for not_approved
	PaymentMethod string // set for not_pix
	Err           error  // set for confirm/notify/internal failures
}

// IngestionPipeline is the per-payment decision procedure shared by the
// webhook and poll entry points.
type IngestionPipeline interface {
	// HandleWebhook runs the full state machine for one webhook delivery:
	// id extraction from the raw body (queryID is the ?id= fallback),
	// gateway confirm, classification, dedup, notify.
	HandleWebhook(ctx context.Context, body []byte, queryID string) PipelineResult

	// HandleRecord runs the state machine for one element of a poll batch.
	// The record already carries full details, so the confirm step is
	// skipped.
	HandleRecord(ctx context.Context, rec domain.PaymentRecord) PipelineResult

	// RetryPending re-attempts notification for payments that were marked
	// processed but whose notify failed. Only populated when the
	// requeue-failed-notifies policy is enabled.
	RetryPending(ctx context.Context)
}

package domain

import "strings"

// EventSource identifies which entry point produced a payment event.
type EventSource string

const (
	SourceWebhook EventSource = "webhook"
	SourcePoll    EventSource = "poll"
)

// PaymentEvent is one inbound trigger: a payment reference plus its origin.
// It lives for a single pipeline run and is never persisted.
type PaymentEvent struct {
	PaymentID string
	Source    EventSource
}

// PaymentRecord is the confirmed view of a payment, as returned by the
// gateway fetch or search endpoints.
type PaymentRecord struct {
	ID            string
	Status        string
	PaymentMethod string
	PaymentType   string
	Amount        float64
	Payer         string
}

// Classification is the outcome of deciding whether a payment qualifies
// for a device notification.
type Classification string

const (
	ClassQualifying  Classification = "qualifying"
	ClassNotApproved Classification = "not_approved"
	ClassNotPix      Classification = "not_pix"
)

// approvedStatuses are the gateway statuses treated as "paid". The gateway
// normally reports "approved"; "paid" and "paid_off" show up on some
// account types.
var approvedStatuses = map[string]bool{
	"approved": true,
	"paid":     true,
	"paid_off": true,
}

// Classify decides whether a payment qualifies for notification.
// It is a pure function of (status, paymentMethod, paymentType): the status
// must be in the approved set (case-insensitive) and either the method or
// the type must name the PIX rail.
func Classify(status, paymentMethod, paymentType string) Classification {
	if !approvedStatuses[strings.ToLower(status)] {
		return ClassNotApproved
	}
	if !IsPix(paymentMethod, paymentType) {
		return ClassNotPix
	}
	return ClassQualifying
}

// IsPix reports whether either the payment method or the payment type
// names the PIX rail, case-insensitively.
func IsPix(paymentMethod, paymentType string) bool {
	return strings.Contains(strings.ToLower(paymentMethod), "pix") ||
		strings.Contains(strings.ToLower(paymentType), "pix")
}

// Classify classifies this record. See the package-level Classify.
func (r PaymentRecord) Classify() Classification {
	return Classify(r.Status, r.PaymentMethod, r.PaymentType)
}

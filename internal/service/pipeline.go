package service

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"

	"pix-notify/internal/core/domain"
	"pix-notify/internal/core/ports"
	"pix-notify/pkg/apperror"

	"github.com/rs/zerolog"
)

// PipelineService is the per-payment decision procedure behind both the
// webhook and poll entry points: extract, confirm, classify, dedup, notify.
type PipelineService struct {
	dedup    ports.DedupStore
	gateway  ports.PaymentGateway
	notifier ports.DeviceNotifier
	logger   zerolog.Logger

	acceptNonPix  bool
	requeueFailed bool

	pendingMu sync.Mutex
	pending   []string
}

// PipelineOptions are the ingestion policy switches.
type PipelineOptions struct {
	AcceptNonPix          bool
	RequeueFailedNotifies bool
}

// NewPipelineService creates the ingestion pipeline.
func NewPipelineService(
	dedup ports.DedupStore,
	gateway ports.PaymentGateway,
	notifier ports.DeviceNotifier,
	opts PipelineOptions,
	logger zerolog.Logger,
) *PipelineService {
	return &PipelineService{
		dedup:         dedup,
		gateway:       gateway,
		notifier:      notifier,
		acceptNonPix:  opts.AcceptNonPix,
		requeueFailed: opts.RequeueFailedNotifies,
		logger:        logger.With().Str("component", "pipeline").Logger(),
	}
}

// asString renders a JSON scalar as a payment id. json.Number keeps large
// numeric ids exact; anything non-scalar is not an id.
func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return ""
	}
}

// extractPaymentID digs the payment id out of a webhook body. Nested
// containers win over root-level fields, the query parameter is the last
// resort. A body that is not a JSON object is ignored, not rejected: some
// gateway notification modes send everything in the query string.
func extractPaymentID(body []byte, queryID string) string {
	var payload map[string]any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		payload = nil
	}

	if data, ok := payload["data"].(map[string]any); ok {
		for _, key := range []string{"id", "id_payment", "payment_id"} {
			if id := asString(data[key]); id != "" {
				return id
			}
		}
	}
	if res, ok := payload["resource"].(map[string]any); ok {
		if id := asString(res["id"]); id != "" {
			return id
		}
	}
	for _, key := range []string{"id", "data_id"} {
		if id := asString(payload[key]); id != "" {
			return id
		}
	}
	return queryID
}

// HandleWebhook runs the full state machine for one webhook delivery.
func (s *PipelineService) HandleWebhook(ctx context.Context, body []byte, queryID string) ports.PipelineResult {
	paymentID := extractPaymentID(body, queryID)
	if paymentID == "" {
		s.logger.Warn().Str("source", string(domain.SourceWebhook)).Msg("webhook carried no payment id")
		return ports.PipelineResult{Code: ports.OutcomeNoPaymentID, Err: apperror.ErrNoPaymentID()}
	}

	log := s.logger.With().
		Str("payment_id", paymentID).
		Str("source", string(domain.SourceWebhook)).
		Logger()

	rec, err := s.gateway.FetchPayment(ctx, paymentID)
	if err != nil {
		log.Error().Err(err).Msg("gateway confirm failed")
		return ports.PipelineResult{Code: ports.OutcomeConfirmFailed, PaymentID: paymentID, Err: apperror.ErrGatewayFetch(err)}
	}

	return s.decide(ctx, log, *rec)
}

// HandleRecord runs the state machine for one element of a poll batch. The
// record already carries full details, so the confirm step is skipped.
func (s *PipelineService) HandleRecord(ctx context.Context, rec domain.PaymentRecord) ports.PipelineResult {
	if rec.ID == "" {
		return ports.PipelineResult{Code: ports.OutcomeNoPaymentID}
	}

	log := s.logger.With().
		Str("payment_id", rec.ID).
		Str("source", string(domain.SourcePoll)).
		Logger()

	return s.decide(ctx, log, rec)
}

// decide classifies a confirmed record, claims it in the dedup store and
// delivers the notification. MarkProcessed comes before Notify: a payment
// is notified at most once even if delivery then fails.
func (s *PipelineService) decide(ctx context.Context, log zerolog.Logger, rec domain.PaymentRecord) ports.PipelineResult {
	switch rec.Classify() {
	case domain.ClassNotApproved:
		log.Info().Str("status", rec.Status).Msg("payment not approved, skipping")
		return ports.PipelineResult{Code: ports.OutcomeNotApproved, PaymentID: rec.ID, Status: rec.Status}
	case domain.ClassNotPix:
		if !s.acceptNonPix {
			log.Info().Str("payment_method", rec.PaymentMethod).Msg("payment not on the pix rail, skipping")
			return ports.PipelineResult{Code: ports.OutcomeNotPix, PaymentID: rec.ID, PaymentMethod: rec.PaymentMethod}
		}
	}

	isNew, err := s.dedup.MarkProcessed(ctx, rec.ID)
	if err != nil {
		log.Error().Err(err).Msg("dedup store unavailable")
		return ports.PipelineResult{Code: ports.OutcomeInternalError, PaymentID: rec.ID, Err: err}
	}
	if !isNew {
		log.Debug().Msg("payment already processed")
		return ports.PipelineResult{Code: ports.OutcomeAlreadyProcessed, PaymentID: rec.ID}
	}

	if err := s.notifier.Notify(ctx, rec.ID); err != nil {
		log.Error().Err(err).Msg("device notification failed after marking processed")
		if s.requeueFailed {
			s.enqueuePending(rec.ID)
		}
		return ports.PipelineResult{Code: ports.OutcomeNotifyFailed, PaymentID: rec.ID, Err: err}
	}

	log.Info().
		Float64("amount", rec.Amount).
		Str("payer", rec.Payer).
		Msg("payment processed and device notified")
	return ports.PipelineResult{Code: ports.OutcomeNotified, PaymentID: rec.ID}
}

func (s *PipelineService) enqueuePending(paymentID string) {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()
	for _, id := range s.pending {
		if id == paymentID {
			return
		}
	}
	s.pending = append(s.pending, paymentID)
}

// RetryPending re-attempts notification for payments that were marked
// processed but whose delivery failed. Still-failing ids go back on the
// queue for the next cycle.
func (s *PipelineService) RetryPending(ctx context.Context) {
	s.pendingMu.Lock()
	batch := s.pending
	s.pending = nil
	s.pendingMu.Unlock()

	if len(batch) == 0 {
		return
	}

	s.logger.Info().Int("count", len(batch)).Msg("retrying pending notifications")
	for _, id := range batch {
		if err := s.notifier.Notify(ctx, id); err != nil {
			s.logger.Warn().Err(err).Str("payment_id", id).Msg("pending notification still failing")
			s.enqueuePending(id)
			continue
		}
		s.logger.Info().Str("payment_id", id).Msg("pending notification delivered")
	}
}

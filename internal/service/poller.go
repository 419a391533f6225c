package service

import (
	"context"
	"time"

	"pix-notify/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Poller periodically sweeps the gateway's newest payments through the
// pipeline. It is the safety net for webhook deliveries that never arrived.
type Poller struct {
	gateway  ports.PaymentGateway
	pipeline ports.IngestionPipeline
	interval time.Duration
	logger   zerolog.Logger
}

// NewPoller creates a gateway poller.
func NewPoller(gateway ports.PaymentGateway, pipeline ports.IngestionPipeline, interval time.Duration, logger zerolog.Logger) *Poller {
	return &Poller{
		gateway:  gateway,
		pipeline: pipeline,
		interval: interval,
		logger:   logger.With().Str("component", "poller").Logger(),
	}
}

// Start launches the polling loop in its own goroutine. The loop stops when
// ctx is cancelled. The first cycle runs after one full interval, not at
// startup: the service may come up faster than its collaborators.
func (p *Poller) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		p.logger.Info().Dur("interval", p.interval).Msg("poller started")
		for {
			select {
			case <-ctx.Done():
				p.logger.Info().Msg("poller stopped")
				return
			case <-ticker.C:
				p.runCycle(ctx)
			}
		}
	}()
}

// runCycle drains the pending-retry queue, then walks one page of recent
// payments through the pipeline. A search failure skips the cycle; the
// next tick tries again.
func (p *Poller) runCycle(ctx context.Context) {
	cycleID := uuid.New().String()
	log := p.logger.With().Str("cycle_id", cycleID).Logger()

	p.pipeline.RetryPending(ctx)

	records, err := p.gateway.SearchRecent(ctx)
	if err != nil {
		log.Error().Err(err).Msg("recent payments search failed")
		return
	}

	var notified int
	for _, rec := range records {
		res := p.pipeline.HandleRecord(ctx, rec)
		switch res.Code {
		case ports.OutcomeNotified:
			notified++
			log.Info().Str("payment_id", res.PaymentID).Msg("poll cycle notified payment")
		case ports.OutcomeAlreadyProcessed, ports.OutcomeNotApproved, ports.OutcomeNotPix:
			// The common steady-state outcomes; nothing to report per record.
		default:
			log.Warn().
				Str("payment_id", res.PaymentID).
				Str("outcome", string(res.Code)).
				Err(res.Err).
				Msg("poll cycle record did not notify")
		}
	}

	log.Debug().Int("scanned", len(records)).Int("notified", notified).Msg("poll cycle finished")
}

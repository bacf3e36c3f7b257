package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/catalog-service/internal/observability"
)

// ExpiredEventSweeper deletes events whose deleteAt has passed.
type ExpiredEventSweeper interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// EventPurger periodically removes expired events.
type EventPurger struct {
	events   ExpiredEventSweeper
	interval time.Duration
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// NewEventPurger builds a purger running every interval.
func NewEventPurger(events ExpiredEventSweeper, interval time.Duration, metrics *observability.Metrics, logger *zap.Logger) *EventPurger {
	if interval <= 0 {
		interval = time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventPurger{events: events, interval: interval, metrics: metrics, logger: logger}
}

// Run sweeps once immediately and then on every tick until ctx is done.
func (p *EventPurger) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info("event purger started", zap.Duration("interval", p.interval))
	p.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("event purger stopped")
			return
		case <-ticker.C:
			p.sweep(ctx)
		}
	}
}

func (p *EventPurger) sweep(ctx context.Context) {
	n, err := p.events.PurgeExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Error("purge expired events", zap.Error(err))
		}
		return
	}
	p.metrics.RecordEventsPurged(n)
	if n > 0 {
		p.logger.Info("expired events purged", zap.Int64("count", n))
	}
}

package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/catalog-service/internal/observability"
)

type countingSweeper struct {
	calls   atomic.Int32
	removed int64
	err     error
}

func (s *countingSweeper) PurgeExpired(context.Context) (int64, error) {
	s.calls.Add(1)
	return s.removed, s.err
}

func TestEventPurgerSweepsUntilCancelled(t *testing.T) {
	sweeper := &countingSweeper{removed: 2}
	core, logs := observer.New(zap.InfoLevel)
	purger := NewEventPurger(sweeper, 10*time.Millisecond, observability.NewMetrics(prometheus.NewRegistry()), zap.New(core))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		purger.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return sweeper.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("purger did not stop after cancel")
	}
	assert.NotZero(t, logs.FilterMessage("expired events purged").Len())
}

func TestEventPurgerLogsFailures(t *testing.T) {
	sweeper := &countingSweeper{err: errors.New("db down")}
	core, logs := observer.New(zap.ErrorLevel)
	purger := NewEventPurger(sweeper, time.Hour, nil, zap.New(core))

	purger.sweep(context.Background())

	assert.Equal(t, int32(1), sweeper.calls.Load())
	assert.Equal(t, 1, logs.FilterMessage("purge expired events").Len())
}

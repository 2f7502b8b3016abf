// Package persist decouples trade storage from the ingestion path. Writes
// are best-effort and at-most-once: a full queue drops the record, a store
// failure is logged and never retried.
package persist

import (
	"context"
	"time"

	"tradepipe/internal/market/window"

	"go.uber.org/zap"
)

const DefaultQueueSize = 256

// Store is the destination for accepted trades. Implemented by the
// Postgres client and by MemoryStore for tests.
type Store interface {
	SaveTrade(ctx context.Context, t window.Trade) error
}

// Writer owns a bounded queue and a worker goroutine draining it into the
// Store. Enqueue never blocks the caller.
type Writer struct {
	store   Store
	queue   chan window.Trade
	timeout time.Duration
	logger  *zap.Logger
	done    chan struct{}
}

// NewWriter starts the worker. A non-positive queueSize falls back to the
// default.
func NewWriter(store Store, queueSize int, logger *zap.Logger) *Writer {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	w := &Writer{
		store:   store,
		queue:   make(chan window.Trade, queueSize),
		timeout: 2 * time.Second,
		logger:  logger,
		done:    make(chan struct{}),
	}
	go w.run()
	return w
}

// Enqueue hands a trade to the background worker. When the queue is full
// the trade is dropped and logged; ingestion latency is never tied to
// storage latency.
func (w *Writer) Enqueue(t window.Trade) {
	select {
	case w.queue <- t:
	default:
		w.logger.Warn("persist queue full, dropping trade",
			zap.String("symbol", t.Symbol),
			zap.Int64("timestamp", t.Timestamp))
	}
}

// Close stops accepting trades and waits for the queue to drain.
func (w *Writer) Close() {
	close(w.queue)
	<-w.done
}

func (w *Writer) run() {
	defer close(w.done)
	for t := range w.queue {
		ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
		err := w.store.SaveTrade(ctx, t)
		cancel()
		if err != nil {
			w.logger.Warn("failed to persist trade",
				zap.String("symbol", t.Symbol),
				zap.Int64("timestamp", t.Timestamp),
				zap.Error(err))
		}
	}
}

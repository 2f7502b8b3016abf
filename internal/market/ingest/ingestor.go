// Package ingest orchestrates the tick pipeline: filter and validate raw
// ticks, analyze them against the rolling window, evaluate alerts, update
// the window and hand the enriched trade off for persistence.
package ingest

import (
	"sync"
	"time"

	"tradepipe/internal/market/alert"
	"tradepipe/internal/market/stats"
	"tradepipe/internal/market/window"

	"go.uber.org/zap"
)

// Persister receives accepted trades as a fire-and-forget side effect. It
// must never block the ingestion path; failures stay on its side.
type Persister interface {
	Enqueue(t window.Trade)
}

// Ingestor is the single process-wide pipeline instance. It owns the
// rolling window and serializes each tick's analyze-then-push sequence so
// concurrent batches never interleave one tick's analysis with another's
// window update.
type Ingestor struct {
	mu        sync.Mutex
	window    *window.Window
	evaluator *alert.Evaluator
	persister Persister
	tracked   map[string]struct{}
	logger    *zap.Logger
}

// New builds an Ingestor tracking the given symbols. persister may be nil
// when persistence is disabled.
func New(w *window.Window, ev *alert.Evaluator, persister Persister, symbols []string, logger *zap.Logger) *Ingestor {
	tracked := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		tracked[s] = struct{}{}
	}
	return &Ingestor{
		window:    w,
		evaluator: ev,
		persister: persister,
		tracked:   tracked,
		logger:    logger,
	}
}

// IngestBatch processes the ticks independently and in order. A validation
// failure skips only the offending tick; untracked symbols are dropped
// without being reported.
func (i *Ingestor) IngestBatch(ticks []RawTick) Result {
	var res Result
	for idx, t := range ticks {
		if _, ok := i.tracked[t.Symbol]; !ok {
			continue
		}
		if err := validate(t); err != nil {
			i.logger.Warn("tick skipped",
				zap.Int("index", idx),
				zap.String("symbol", t.Symbol),
				zap.Error(err))
			res.Skipped = append(res.Skipped, SkippedTick{Index: idx, Reason: err.Error()})
			continue
		}

		trade := i.process(t)
		res.Trades = append(res.Trades, trade)
		res.Accepted++
	}
	return res
}

// process runs the per-tick sequence. Analysis and alert evaluation see the
// window state prior to this tick; the window is mutated only afterwards,
// atomically with the analysis under the ingestor lock.
func (i *Ingestor) process(t RawTick) window.Trade {
	i.mu.Lock()
	prior := i.window.RecentPrices(stats.SampleSize)
	analysis := stats.Analyze(prior, t.Price)
	alerts := i.evaluator.Evaluate(t.Symbol, t.Price, prior)

	trade := window.Trade{
		Symbol:      t.Symbol,
		Price:       t.Price,
		Volume:      t.Volume,
		Timestamp:   t.Timestamp,
		Datetime:    time.UnixMilli(t.Timestamp).UTC().Format(time.RFC3339),
		ProcessedAt: time.Now().UTC(),
		Analysis:    analysis,
		Alerts:      alerts,
	}

	i.window.PushPrice(t.Price)
	i.window.PushTrade(trade)
	i.mu.Unlock()

	if len(alerts) > 0 {
		for _, a := range alerts {
			i.logger.Warn("alert triggered",
				zap.String("symbol", t.Symbol),
				zap.String("type", string(a.Kind)),
				zap.String("message", a.Message))
		}
	}

	if i.persister != nil {
		i.persister.Enqueue(trade)
	}
	return trade
}

// CurrentStats summarizes the trade window at call time.
func (i *Ingestor) CurrentStats() stats.Summary {
	return stats.Summarize(i.window.Snapshot().Trades)
}

// RecentTrades returns up to limit trades in chronological order, oldest
// first.
func (i *Ingestor) RecentTrades(limit int) []window.Trade {
	return i.window.RecentTrades(limit)
}

// WindowCounts reports how many prices and trades the window currently holds.
func (i *Ingestor) WindowCounts() (prices, trades int) {
	return i.window.Counts()
}

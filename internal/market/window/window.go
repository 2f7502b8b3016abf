package window

import (
	"sync"
)

const (
	DefaultPriceCapacity = 100
	DefaultTradeCapacity = 1000
)

// Window is a bounded rolling buffer of recent prices and enriched trades.
// Both sequences are FIFO: inserts append at the tail and evict the head
// once the capacity is reached. A single mutex serializes writers and
// snapshot readers; all accessors return copies, so callers never hold a
// reference into the live buffers.
type Window struct {
	mu       sync.Mutex
	prices   []float64
	trades   []Trade
	priceCap int
	tradeCap int
}

// Snapshot is a point-in-time copy of the window contents, ordered oldest
// first. Safe to iterate while the window keeps receiving writes.
type Snapshot struct {
	Prices []float64
	Trades []Trade
}

// New creates a Window with the given capacities. Non-positive capacities
// fall back to the defaults.
func New(priceCap, tradeCap int) *Window {
	if priceCap <= 0 {
		priceCap = DefaultPriceCapacity
	}
	if tradeCap <= 0 {
		tradeCap = DefaultTradeCapacity
	}
	return &Window{
		prices:   make([]float64, 0, priceCap),
		trades:   make([]Trade, 0, tradeCap),
		priceCap: priceCap,
		tradeCap: tradeCap,
	}
}

func (w *Window) PushPrice(p float64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.prices) == w.priceCap {
		// Shift in place so the backing array stays bounded
		copy(w.prices, w.prices[1:])
		w.prices = w.prices[:w.priceCap-1]
	}
	w.prices = append(w.prices, p)
}

func (w *Window) PushTrade(t Trade) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.trades) == w.tradeCap {
		copy(w.trades, w.trades[1:])
		w.trades = w.trades[:w.tradeCap-1]
	}
	w.trades = append(w.trades, t)
}

// RecentPrices returns the last min(n, len) prices in chronological order
// (oldest first). A non-positive n yields an empty slice.
func (w *Window) RecentPrices(n int) []float64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	if n <= 0 {
		return []float64{}
	}
	if n > len(w.prices) {
		n = len(w.prices)
	}
	cp := make([]float64, n)
	copy(cp, w.prices[len(w.prices)-n:])
	return cp
}

// RecentTrades returns the last min(n, len) trades in chronological order
// (oldest first). A non-positive n yields an empty slice.
func (w *Window) RecentTrades(n int) []Trade {
	w.mu.Lock()
	defer w.mu.Unlock()

	if n <= 0 {
		return []Trade{}
	}
	if n > len(w.trades) {
		n = len(w.trades)
	}
	cp := make([]Trade, n)
	copy(cp, w.trades[len(w.trades)-n:])
	return cp
}

// Snapshot copies out the full window contents at call time.
func (w *Window) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	prices := make([]float64, len(w.prices))
	copy(prices, w.prices)
	trades := make([]Trade, len(w.trades))
	copy(trades, w.trades)
	return Snapshot{Prices: prices, Trades: trades}
}

// Counts returns the current number of stored prices and trades.
func (w *Window) Counts() (prices, trades int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.prices), len(w.trades)
}

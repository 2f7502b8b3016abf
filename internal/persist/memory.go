package persist

import (
	"context"
	"sync"

	"tradepipe/internal/market/window"
)

// MemoryStore is an in-process Store used in tests and when Postgres is
// disabled.
type MemoryStore struct {
	mu     sync.Mutex
	trades []window.Trade
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		trades: make([]window.Trade, 0),
	}
}

func (m *MemoryStore) SaveTrade(_ context.Context, t window.Trade) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trades = append(m.trades, t)
	return nil
}

func (m *MemoryStore) Trades() []window.Trade {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Copy to avoid race
	cp := make([]window.Trade, len(m.trades))
	copy(cp, m.trades)
	return cp
}

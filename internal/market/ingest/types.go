package ingest

import "tradepipe/internal/market/window"

// RawTick is one reported trade event as delivered by the feed, using the
// Finnhub wire field names.
type RawTick struct {
	Symbol    string  `json:"s"` // instrument symbol, e.g. "NVDA"
	Price     float64 `json:"p"` // last price
	Volume    int64   `json:"v"` // traded volume
	Timestamp int64   `json:"t"` // exchange timestamp (milliseconds since epoch)
}

// SkippedTick records why a tick within a batch was not accepted.
type SkippedTick struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// Result is the aggregate outcome of one batch. Ticks for untracked
// symbols are silently dropped and appear in neither Trades nor Skipped.
type Result struct {
	Accepted int            `json:"processed_trades"`
	Trades   []window.Trade `json:"trades"`
	Skipped  []SkippedTick  `json:"skipped,omitempty"`
}

package window

import "time"

// Trend describes the qualitative price direction between consecutive observations.
type Trend string

const (
	TrendInsufficientData Trend = "insufficient_data" // not enough history to analyze
	TrendUp               Trend = "up"
	TrendDown             Trend = "down"
	TrendFlat             Trend = "flat"
)

// AlertKind identifies the rule that produced an alert.
type AlertKind string

const (
	AlertHighPrice  AlertKind = "high_price"  // price above the configured high threshold
	AlertLowPrice   AlertKind = "low_price"   // price below the configured low threshold
	AlertPriceSpike AlertKind = "price_spike" // abrupt percentage move vs. the previous tick
)

// Analysis holds the trend/volatility statistics computed for a single tick
// from the window state prior to that tick. All numeric fields are rounded
// to two decimals for presentation.
type Analysis struct {
	Trend            Trend   `json:"trend"`
	PriceChange      float64 `json:"price_change"`      // current price minus last recorded price
	PercentageChange float64 `json:"percentage_change"` // price change relative to the last recorded price, in percent
	MovingAverage    float64 `json:"moving_average"`    // mean of the sample set
	Volatility       float64 `json:"volatility"`        // sample standard deviation of the sample set
}

// Alert is a single triggered alert condition. Alerts carry no identity
// beyond the tick that produced them and are re-emitted on every
// qualifying tick.
type Alert struct {
	Kind      AlertKind `json:"type"`
	Message   string    `json:"message"`
	Threshold float64   `json:"threshold,omitempty"` // threshold that was crossed
	Magnitude float64   `json:"magnitude,omitempty"` // observed value, e.g. spike percentage
}

// Trade is an enriched, immutable record of one accepted tick: the raw tick
// fields plus ingestion metadata, the per-tick analysis and any alerts.
type Trade struct {
	Symbol      string    `json:"symbol"`
	Price       float64   `json:"price"`
	Volume      int64     `json:"volume"`
	Timestamp   int64     `json:"timestamp"` // exchange timestamp (milliseconds since epoch)
	Datetime    string    `json:"datetime"`  // exchange timestamp as RFC 3339
	ProcessedAt time.Time `json:"processed_at"`
	Analysis    Analysis  `json:"analysis"`
	Alerts      []Alert   `json:"alerts"`
}

// Package alert evaluates per-tick alert conditions against configured
// symbol thresholds. The evaluator is stateless: every qualifying tick
// re-emits its alerts, and any debouncing is left to downstream consumers.
package alert

import (
	"fmt"
	"math"

	"tradepipe/internal/market/stats"
	"tradepipe/internal/market/window"
)

// DefaultSpikePercent is the percentage move between consecutive ticks
// above which a price_spike alert fires. The comparison is strict, so a
// move of exactly the threshold does not trigger.
const DefaultSpikePercent = 2.0

// Thresholds holds the per-symbol price bounds. Low must be below High.
type Thresholds struct {
	High float64 `mapstructure:"high"`
	Low  float64 `mapstructure:"low"`
}

// Evaluator checks a new price against symbol thresholds and the previous
// recorded price.
type Evaluator struct {
	thresholds   map[string]Thresholds
	spikePercent float64
}

// NewEvaluator builds an Evaluator from a symbol threshold map and a spike
// percentage. A non-positive spikePercent falls back to the default.
func NewEvaluator(thresholds map[string]Thresholds, spikePercent float64) *Evaluator {
	if spikePercent <= 0 {
		spikePercent = DefaultSpikePercent
	}
	if thresholds == nil {
		thresholds = map[string]Thresholds{}
	}
	return &Evaluator{thresholds: thresholds, spikePercent: spikePercent}
}

// Evaluate returns the alerts triggered by price, in deterministic order:
// symbol-threshold alerts (high_price / low_price) before the spike alert.
// priorPrices is the chronological price history recorded before this tick;
// only its last element is consulted, for the spike check.
func (e *Evaluator) Evaluate(symbol string, price float64, priorPrices []float64) []window.Alert {
	var alerts []window.Alert

	if th, ok := e.thresholds[symbol]; ok {
		if price > th.High {
			alerts = append(alerts, window.Alert{
				Kind:      window.AlertHighPrice,
				Message:   fmt.Sprintf("%s price above $%.2f: $%.2f", symbol, th.High, price),
				Threshold: th.High,
				Magnitude: price,
			})
		} else if price < th.Low {
			alerts = append(alerts, window.Alert{
				Kind:      window.AlertLowPrice,
				Message:   fmt.Sprintf("%s price below $%.2f: $%.2f", symbol, th.Low, price),
				Threshold: th.Low,
				Magnitude: price,
			})
		}
	}

	if len(priorPrices) > 0 {
		last := priorPrices[len(priorPrices)-1]
		// A zero previous price makes the percentage undefined; skip the check.
		if last != 0 {
			changePercent := math.Abs((price-last)/last) * 100
			if changePercent > e.spikePercent {
				alerts = append(alerts, window.Alert{
					Kind:      window.AlertPriceSpike,
					Message:   fmt.Sprintf("%s price moved %.2f%%: $%.2f", symbol, changePercent, price),
					Threshold: e.spikePercent,
					Magnitude: stats.Round2(changePercent),
				})
			}
		}
	}

	return alerts
}

package alert

import (
	"testing"

	"tradepipe/internal/market/window"
)

func nvdaEvaluator() *Evaluator {
	return NewEvaluator(map[string]Thresholds{
		"NVDA": {High: 500, Low: 400},
	}, 2.0)
}

// go test -v --run TestHighPrice
func TestHighPrice(t *testing.T) {
	alerts := nvdaEvaluator().Evaluate("NVDA", 510, nil)

	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if alerts[0].Kind != window.AlertHighPrice {
		t.Errorf("expected high_price, got %s", alerts[0].Kind)
	}
	if alerts[0].Threshold != 500 {
		t.Errorf("threshold = %v, want 500", alerts[0].Threshold)
	}
}

// go test -v --run TestLowPrice
func TestLowPrice(t *testing.T) {
	alerts := nvdaEvaluator().Evaluate("NVDA", 390, nil)

	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if alerts[0].Kind != window.AlertLowPrice {
		t.Errorf("expected low_price, got %s", alerts[0].Kind)
	}
}

// go test -v --run TestNoThresholdsForSymbol
func TestNoThresholdsForSymbol(t *testing.T) {
	alerts := nvdaEvaluator().Evaluate("AAPL", 99999, nil)
	if len(alerts) != 0 {
		t.Errorf("unconfigured symbol must not produce threshold alerts, got %+v", alerts)
	}
}

// go test -v --run TestAlertOrdering
func TestAlertOrdering(t *testing.T) {
	// 505 -> 520 is roughly a 3% jump above the high threshold
	alerts := nvdaEvaluator().Evaluate("NVDA", 520, []float64{505})

	if len(alerts) != 2 {
		t.Fatalf("expected 2 alerts, got %d: %+v", len(alerts), alerts)
	}
	if alerts[0].Kind != window.AlertHighPrice {
		t.Errorf("alerts[0] = %s, want high_price", alerts[0].Kind)
	}
	if alerts[1].Kind != window.AlertPriceSpike {
		t.Errorf("alerts[1] = %s, want price_spike", alerts[1].Kind)
	}
}

// go test -v --run TestSpikeBoundary
func TestSpikeBoundary(t *testing.T) {
	ev := nvdaEvaluator()

	// Exactly 2.00% is not a spike; the comparison is strict.
	if alerts := ev.Evaluate("NVDA", 459, []float64{450}); len(alerts) != 0 {
		t.Errorf("2.00%% move must not trigger, got %+v", alerts)
	}

	// 2.01% is.
	alerts := ev.Evaluate("NVDA", 459.045, []float64{450})
	if len(alerts) != 1 || alerts[0].Kind != window.AlertPriceSpike {
		t.Fatalf("expected a price_spike for a 2.01%% move, got %+v", alerts)
	}
	if alerts[0].Magnitude != 2.01 {
		t.Errorf("magnitude = %v, want 2.01", alerts[0].Magnitude)
	}
}

// go test -v --run TestSpikeDownward
func TestSpikeDownward(t *testing.T) {
	alerts := nvdaEvaluator().Evaluate("NVDA", 436, []float64{450})
	if len(alerts) != 1 || alerts[0].Kind != window.AlertPriceSpike {
		t.Fatalf("expected a price_spike for a drop, got %+v", alerts)
	}
}

// go test -v --run TestSpikeZeroLastPrice
func TestSpikeZeroLastPrice(t *testing.T) {
	alerts := nvdaEvaluator().Evaluate("NVDA", 450, []float64{0})
	if len(alerts) != 0 {
		t.Errorf("zero previous price must skip the spike check, got %+v", alerts)
	}
}

// go test -v --run TestSpikeNoHistory
func TestSpikeNoHistory(t *testing.T) {
	alerts := nvdaEvaluator().Evaluate("NVDA", 450, []float64{})
	if len(alerts) != 0 {
		t.Errorf("no prior price must skip the spike check, got %+v", alerts)
	}
}

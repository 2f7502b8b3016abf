package stats

import "tradepipe/internal/market/window"

// Summary aggregates the trade window for the stats endpoint.
type Summary struct {
	TotalTrades  int     `json:"total_trades"`
	TotalVolume  int64   `json:"total_volume"`
	LatestPrice  float64 `json:"latest_price"`
	HighestPrice float64 `json:"highest_price"`
	LowestPrice  float64 `json:"lowest_price"`
	AveragePrice float64 `json:"average_price"`
	PriceRange   float64 `json:"price_range"`
}

// Summarize computes a Summary over the given trades. An empty slice
// yields a zero Summary.
func Summarize(trades []window.Trade) Summary {
	if len(trades) == 0 {
		return Summary{}
	}

	var (
		totalVolume int64
		sum         float64
		highest     = trades[0].Price
		lowest      = trades[0].Price
	)
	for _, t := range trades {
		totalVolume += t.Volume
		sum += t.Price
		if t.Price > highest {
			highest = t.Price
		}
		if t.Price < lowest {
			lowest = t.Price
		}
	}

	return Summary{
		TotalTrades:  len(trades),
		TotalVolume:  totalVolume,
		LatestPrice:  trades[len(trades)-1].Price,
		HighestPrice: highest,
		LowestPrice:  lowest,
		AveragePrice: Round2(sum / float64(len(trades))),
		PriceRange:   Round2(highest - lowest),
	}
}

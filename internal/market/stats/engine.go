// Package stats computes per-tick trend and volatility statistics from the
// rolling price window, plus summary statistics over the trade window.
package stats

import (
	"math"

	"tradepipe/internal/market/window"
)

// SampleSize is the number of most recent recorded prices used as the
// sample set for the moving average and volatility.
const SampleSize = 10

// Analyze computes the Analysis for currentPrice against the prices recorded
// before it arrived (the caller must not have pushed currentPrice yet,
// otherwise the tick would be compared against itself). With fewer than two
// prior prices the result is trend "insufficient_data" with zero-valued
// numerics; that is a defined state, not an error.
//
// Internals run at full float64 precision; rounding to two decimals happens
// only on the returned fields.
func Analyze(priorPrices []float64, currentPrice float64) window.Analysis {
	if len(priorPrices) < 2 {
		return window.Analysis{Trend: window.TrendInsufficientData}
	}

	sample := priorPrices
	if len(sample) > SampleSize {
		sample = sample[len(sample)-SampleSize:]
	}

	last := sample[len(sample)-1]
	priceChange := currentPrice - last

	var percentageChange float64
	if last != 0 {
		percentageChange = priceChange / last * 100
	}

	trend := window.TrendFlat
	switch {
	case priceChange > 0:
		trend = window.TrendUp
	case priceChange < 0:
		trend = window.TrendDown
	}

	return window.Analysis{
		Trend:            trend,
		PriceChange:      Round2(priceChange),
		PercentageChange: Round2(percentageChange),
		MovingAverage:    Round2(mean(sample)),
		Volatility:       Round2(stddev(sample)),
	}
}

// Round2 rounds to two decimal places. Kept exported so formatting stays a
// boundary concern, separate from the computation itself.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stddev is the Bessel-corrected sample standard deviation. Defined as 0
// for fewer than two samples so a short window never poisons alert math
// with NaN.
func stddev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	var sum float64
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}

package adapters

import "math"

// Rounding happens here, at the wire boundary, and nowhere inside the
// engine.

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round0(v float64) float64 {
	return math.Round(v)
}

// fromPercent normalizes a user-entered whole-number percentage (6.5 for
// 6.5%) to the decimal fraction the engine expects.
func fromPercent(v float64) float64 {
	return v / 100
}

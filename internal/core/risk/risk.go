// Package risk holds the pure score arithmetic shared by the validation pipelines
package risk

import "math"

// Score bounds. Higher means more trustworthy
const (
	Min = 0
	Max = 100
)

// Fixed weights for the combo blend
const (
	emailWeight = 0.6
	phoneWeight = 0.4
)

// Clamp bounds a score to [Min, Max]
func Clamp(n int) int {
	if n < Min {
		return Min
	}
	if n > Max {
		return Max
	}
	return n
}

// Blend combines an email and a phone score with the fixed 60/40 weighting,
// rounding half away from zero. A missing score participates as zero
func Blend(email, phone int) int {
	return Clamp(int(math.Round(float64(email)*emailWeight + float64(phone)*phoneWeight)))
}

// Package floatutils provides utilities for working with floats
package floatutils

import (
	"math"

	"gonum.org/v1/gonum/spatial/r1"
)

// Clip clips a floating point to within a minimum and maximum value.
// If the floating point exceeds max, then the function returns the max
// If min exceeds the floating point, then the function returns the min
func Clip(value, min, max float64) float64 {
	clipped := math.Min(value, max)
	return math.Max(clipped, min)
}

// ClipInterval is a wrapper to use Clip with an r1.Interval instead of
// a separate max and min value
func ClipInterval(value float64, interval r1.Interval) float64 {
	return Clip(value, interval.Min, interval.Max)
}

// Argmax returns the index of the first element of values that is
// strictly greater than every element before it and than -∞. The
// boolean return value is false if no such element exists, which
// happens when values is empty or holds only -∞ and NaN.
func Argmax(values []float64) (int, bool) {
	max := math.Inf(-1)
	index := -1

	for i, value := range values {
		if value > max {
			max = value
			index = i
		}
	}
	return index, index >= 0
}

// Lowpass smooths a series with a windowed sinc filter. Each output
// element is a weighted average of the input element and its taps
// neighbours on each side, where the neighbour at distance d has
// weight sin(d*spread)/(d*spread). Samples beyond either end of the
// series are clamped to the first or last element.
func Lowpass(series []float64, spread float64, taps int) []float64 {
	n := len(series)
	filtered := make([]float64, n)

	for i := range series {
		y := series[i]
		wt := 1.0
		for d := 1; d <= taps; d++ {
			after := clampIndex(i+d, n)
			before := clampIndex(i-d, n)

			arg := float64(d) * spread
			w := math.Sin(arg) / arg
			wt += 2 * w
			y += (series[after] + series[before]) * w
		}
		filtered[i] = y / wt
	}
	return filtered
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

package floatutils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r1"
)

func TestArgmax(t *testing.T) {
	cases := []struct {
		values []float64
		index  int
		ok     bool
	}{
		{[]float64{0, 0, 0, 0}, 0, true},
		{[]float64{0, 1, 1, 0}, 1, true},
		{[]float64{-3, -2, -1, -1}, 2, true},
		{[]float64{math.NaN(), 2, math.NaN(), 1}, 1, true},
		{[]float64{math.Inf(-1), math.Inf(-1)}, -1, false},
		{[]float64{math.NaN(), math.NaN()}, -1, false},
		{nil, -1, false},
	}

	for _, c := range cases {
		index, ok := Argmax(c.values)
		assert.Equal(t, c.index, index, "%v", c.values)
		assert.Equal(t, c.ok, ok, "%v", c.values)
	}
}

func TestClip(t *testing.T) {
	assert.Equal(t, 1.0, Clip(3, 0, 1))
	assert.Equal(t, 0.0, Clip(-3, 0, 1))
	assert.Equal(t, 0.5, ClipInterval(0.5, r1.Interval{Min: 0, Max: 1}))
}

func TestLowpass(t *testing.T) {
	// A constant series is unchanged
	constant := []float64{2, 2, 2, 2, 2, 2}
	for _, v := range Lowpass(constant, 0.25, 29) {
		assert.InDelta(t, 2.0, v, 1e-9)
	}

	// Noise is damped towards the mean
	noisy := make([]float64, 200)
	for i := range noisy {
		if i%2 == 0 {
			noisy[i] = 1
		} else {
			noisy[i] = -1
		}
	}
	smooth := Lowpass(noisy, 0.25, 29)
	assert.Len(t, smooth, len(noisy))
	for _, v := range smooth[50:150] {
		assert.Less(t, math.Abs(v), 0.5)
	}

	assert.Empty(t, Lowpass(nil, 0.25, 29))
}

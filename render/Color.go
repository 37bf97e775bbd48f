// Package render draws a trained gridworld for people to look at: a
// PNG heatmap of the grid and its state values, an HTML chart of the
// returns seen during training and a coloured dump for the terminal.
package render

import (
	"image/color"
	"math"

	"github.com/samuelfneumann/minegrid/utils/floatutils"
)

// scale holds the stops of the utility colour scale, from the lowest
// utility to the highest
var scale = [...][3]float64{
	{0, 0, 1}, // blue
	{0, 1, 1}, // cyan
	{0, 1, 0}, // green
	{1, 1, 0}, // yellow
	{1, 0, 0}, // red
}

// UtilityColor maps utility u onto a smooth blue to red scale, where
// min maps to blue and max maps to red. Utilities outside [min, max]
// are clipped to the nearest end. The returned components are in
// [0, 1].
func UtilityColor(u, min, max float64) (r, g, b float64) {
	t := 0.0
	if max > min {
		t = floatutils.Clip((u-min)/(max-min), 0, 1)
	}
	if math.IsNaN(t) {
		t = 0
	}

	pos := t * float64(len(scale)-1)
	low := int(math.Floor(pos))
	high := int(math.Ceil(pos))
	frac := pos - float64(low)

	r = (1-frac)*scale[low][0] + frac*scale[high][0]
	g = (1-frac)*scale[low][1] + frac*scale[high][1]
	b = (1-frac)*scale[low][2] + frac*scale[high][2]
	return r, g, b
}

// UtilityRGBA is UtilityColor as an opaque color.RGBA
func UtilityRGBA(u, min, max float64) color.RGBA {
	r, g, b := UtilityColor(u, min, max)
	return color.RGBA{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
		A: 255,
	}
}

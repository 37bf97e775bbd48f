package render

import (
	"fmt"
	"io"
	"os"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"github.com/samuelfneumann/minegrid/agent/tabular/qlearning"
	"github.com/samuelfneumann/minegrid/environment/gridworld"
	"gonum.org/v1/gonum/mat"
)

// CellSize is the width and height in pixels of a single cell of a
// heatmap
const CellSize = 64

// ErrShape is returned when a value matrix does not match its grid
var ErrShape = errors.New("value matrix does not match grid")

// Fill colours of the cells, drawn inside a frame coloured by the
// cell's value
var cellRGB = map[gridworld.Cell][3]float64{
	gridworld.Free:   {0.3, 0.48, 0.1},
	gridworld.Mine:   {0.7, 0.1, 0.1},
	gridworld.Wall:   {0.15, 0.16, 0.22},
	gridworld.Finish: {0.1, 1.0, 0.15},
}

var startRGB = [3]float64{0.2, 0.2, 0.8}

// Heatmap draws grid g as a PNG to w. Each cell is framed by the
// utility colour of its value in values, and its value is printed in
// the middle. The values matrix uses the layout of
// agent.Learner.MaxValues(): one row per grid row with the top row
// first. The colour scale spans qlearning.ValueRange(values).
//
// If values is nil, only the cells are drawn.
func Heatmap(w io.Writer, g *gridworld.Grid, values *mat.Dense) error {
	width, height := g.Dims()
	if err := checkShape(g, values); err != nil {
		return errors.Wrap(err, "heatmap")
	}

	dc := gg.NewContext(width*CellSize, height*CellSize)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	min, max := qlearning.ValueRange(values)
	for row := 0; row < height; row++ {
		y := height - 1 - row
		for x := 0; x < width; x++ {
			px := float64(x * CellSize)
			py := float64(row * CellSize)

			if values != nil {
				dc.SetRGB(UtilityColor(values.At(row, x), min, max))
				dc.DrawRectangle(px, py, CellSize, CellSize)
				dc.Fill()
			}

			cell, err := g.At(x, y)
			if err != nil {
				return errors.Wrap(err, "heatmap")
			}
			fill := cellRGB[cell]
			if x == 0 && y == 0 {
				fill = startRGB
			}
			margin := 0.05 * CellSize
			dc.SetRGB(fill[0], fill[1], fill[2])
			dc.DrawRectangle(px+margin, py+margin, CellSize-2*margin,
				CellSize-2*margin)
			dc.Fill()

			if values != nil {
				dc.SetRGB(0, 0, 0)
				dc.DrawStringAnchored(fmt.Sprintf("%.2f", values.At(row, x)),
					px+CellSize/2, py+CellSize/2, 0.5, 0.5)
			}
		}
	}

	return dc.EncodePNG(w)
}

// SaveHeatmap draws a Heatmap into the PNG file filename
func SaveHeatmap(filename string, g *gridworld.Grid, values *mat.Dense) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "saveHeatmap")
	}

	if err := Heatmap(file, g, values); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// checkShape returns an error if values is not nil and does not hold
// one value per cell of g
func checkShape(g *gridworld.Grid, values *mat.Dense) error {
	if values == nil {
		return nil
	}

	width, height := g.Dims()
	r, c := values.Dims()
	if r != height || c != width {
		return errors.Wrapf(ErrShape, "(%d, %d) values for (%d, %d) grid", c, r,
			width, height)
	}
	return nil
}

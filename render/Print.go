package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/samuelfneumann/minegrid/environment/gridworld"
	"gonum.org/v1/gonum/mat"
)

// Fprint writes grid g to w with the top row first. Every cell is
// printed as its symbol followed by its value in values, which uses the
// layout of agent.Learner.MaxValues(). If values is nil, only symbols
// are printed. If colors is true, cells are coloured by kind with ANSI
// escape codes.
func Fprint(w io.Writer, g *gridworld.Grid, values *mat.Dense,
	colors bool) error {
	if err := checkShape(g, values); err != nil {
		return errors.Wrap(err, "fprint")
	}
	au := aurora.NewAurora(colors)

	width, height := g.Dims()
	var b strings.Builder
	for row := 0; row < height; row++ {
		y := height - 1 - row
		for x := 0; x < width; x++ {
			if x > 0 {
				b.WriteString(au.White("|").String())
			}

			cell, err := g.At(x, y)
			if err != nil {
				return errors.Wrap(err, "fprint")
			}
			text := fmt.Sprintf(" %c ", gridworld.Symbol(cell))
			if values != nil {
				text = fmt.Sprintf(" %c %6.2f ", gridworld.Symbol(cell),
					values.At(row, x))
			}
			b.WriteString(paint(au, cell, text).String())
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func paint(au aurora.Aurora, c gridworld.Cell, text string) aurora.Value {
	switch c {
	case gridworld.Mine:
		return au.Red(text)
	case gridworld.Wall:
		return au.Blue(text)
	case gridworld.Finish:
		return au.Bold(au.Yellow(text))
	default:
		return au.Green(text)
	}
}

// Package gridworld implements a 2D gridworld of free cells, mines,
// walls and a finish cell, together with the episodes played on it
package gridworld

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

var (
	// ErrInvalidSize is returned when a grid dimension is less than 1
	ErrInvalidSize = errors.New("invalid grid size")

	// ErrOutOfBounds is returned when a coordinate lies outside the grid
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// Grid represents the static layout of a gridworld.
//
// Cells are stored row-major, with the cell at (x, y) stored at index
// y*width + x. The cell (0, 0) is the bottom-left corner and y grows
// upwards.
type Grid struct {
	cells         []Cell
	width, height int
	rng           *rand.Rand // Source for random layout generation
}

// New creates a new width x height Grid of Free cells. The seed
// determines the random layouts produced by Generate().
func New(width, height int, seed uint64) (*Grid, error) {
	g := &Grid{rng: rand.New(rand.NewSource(seed))}
	if err := g.Resize(width, height); err != nil {
		return nil, err
	}
	return g, nil
}

// Resize reallocates the grid to width x height Free cells, discarding
// the previous layout
func (g *Grid) Resize(width, height int) error {
	if width < 1 || height < 1 {
		return errors.Wrapf(ErrInvalidSize, "resize: (%d, %d)", width, height)
	}

	g.cells = make([]Cell, width*height)
	g.width = width
	g.height = height
	return nil
}

// Generate clears the grid and randomly places approximately numWalls
// Wall cells, then approximately numMines Mine cells, on Free cells.
// Placement stops early once no Free cells remain, so both counts are
// targets rather than guarantees.
func (g *Grid) Generate(numWalls, numMines int) {
	for i := range g.cells {
		g.cells[i] = Free
	}
	free := len(g.cells)

	place := func(kind Cell, n int) {
		for n > 0 && free > 0 {
			x := g.rng.Intn(g.width)
			y := g.rng.Intn(g.height)
			if g.cells[g.index(x, y)] == Free {
				g.cells[g.index(x, y)] = kind
				n--
				free--
			}
		}
	}
	place(Wall, numWalls)
	place(Mine, numMines)
}

// At returns the cell at (x, y)
func (g *Grid) At(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Free, errors.Wrapf(ErrOutOfBounds, "at: (%d, %d) in (%d, %d) grid",
			x, y, g.width, g.height)
	}
	return g.cells[g.index(x, y)], nil
}

// Set sets the cell at (x, y) to kind c
func (g *Grid) Set(x, y int, c Cell) error {
	if !g.InBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "set: (%d, %d) in (%d, %d) grid",
			x, y, g.width, g.height)
	}
	g.cells[g.index(x, y)] = c
	return nil
}

// InBounds returns whether (x, y) addresses a cell of the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Dims gets the width and height of the Grid
func (g *Grid) Dims() (width, height int) {
	return g.width, g.height
}

// Count returns the number of cells of kind c
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, cell := range g.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// cell returns the cell at (x, y) without bounds reporting. Callers
// must have checked InBounds().
func (g *Grid) cell(x, y int) Cell {
	return g.cells[g.index(x, y)]
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// String returns the grid with the top row first, using '.' for Free,
// '*' for Mine, '#' for Wall and 'F' for Finish
func (g *Grid) String() string {
	var b strings.Builder
	for y := g.height - 1; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			b.WriteByte(Symbol(g.cell(x, y)))
		}
		if y > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Symbol returns the single character used to print a cell
func Symbol(c Cell) byte {
	switch c {
	case Mine:
		return '*'
	case Wall:
		return '#'
	case Finish:
		return 'F'
	default:
		return '.'
	}
}

package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/minegrid/environment"
	"gonum.org/v1/gonum/floats"
)

// Record holds one value per action for a single state
type Record [environment.NumActions]float64

// Max returns the largest value in the Record
func (r *Record) Max() float64 {
	return floats.Max(r[:])
}

// Fill sets every action value in the Record to v
func (r *Record) Fill(v float64) {
	for i := range r {
		r[i] = v
	}
}

// Counts holds one visit count per action for a single state
type Counts [environment.NumActions]int

// table is a row-major per-state table of Records and Counts for a
// width x height grid
type table struct {
	width, height int
	values        []Record
	counts        []Counts
}

// resize reallocates the table for a width x height grid with all
// values and counts zeroed
func (t *table) resize(width, height int) {
	t.width, t.height = width, height
	t.values = make([]Record, width*height)
	t.counts = make([]Counts, width*height)
}

// zero sets all values and counts to zero
func (t *table) zero() {
	for i := range t.values {
		t.values[i] = Record{}
		t.counts[i] = Counts{}
	}
}

func (t *table) inBounds(x, y int) bool {
	return x >= 0 && x < t.width && y >= 0 && y < t.height
}

// record returns the Record for state (x, y). Learners only index
// states received from their environment, so an invalid state is a
// programming error and record panics.
func (t *table) record(x, y int) *Record {
	if !t.inBounds(x, y) {
		panic(fmt.Sprintf("record: state (%d, %d) outside (%d, %d) table",
			x, y, t.width, t.height))
	}
	return &t.values[y*t.width+x]
}

// count returns the visit Counts for state (x, y), panicking for
// invalid states
func (t *table) count(x, y int) *Counts {
	if !t.inBounds(x, y) {
		panic(fmt.Sprintf("count: state (%d, %d) outside (%d, %d) table",
			x, y, t.width, t.height))
	}
	return &t.counts[y*t.width+x]
}

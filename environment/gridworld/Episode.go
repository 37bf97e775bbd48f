package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/minegrid/environment"
	"github.com/samuelfneumann/minegrid/timestep"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Slippage probabilities. With probability SlipClockwise an action is
// rotated 90° clockwise before execution, with probability
// SlipCounterClockwise it is rotated 90° counter-clockwise, otherwise
// it is executed as intended.
const (
	SlipClockwise        float64 = 0.1
	SlipCounterClockwise float64 = 0.1
)

// Episode tracks a single agent moving around a Grid. Every episode
// starts at (0, 0) and ends when the agent enters a Mine or the Finish.
//
// Episode implements environment.Environment.
type Episode struct {
	grid   *Grid
	x, y   int
	ended  bool
	slip   environment.Sampler // Uniform [0, 1) rolls for slippage
	number int
	last   timestep.TimeStep
}

// NewEpisode returns a new Episode played on grid g. The seed
// determines the random slippage of actions.
func NewEpisode(g *Grid, seed uint64) *Episode {
	source := rand.NewSource(seed)
	slip := distuv.Uniform{Min: 0.0, Max: 1.0, Src: source}

	return NewEpisodeWithSampler(g, slip)
}

// NewEpisodeWithSampler returns a new Episode played on grid g which
// draws its slippage rolls from s. Values drawn from s should lie in
// [0, 1).
func NewEpisodeWithSampler(g *Grid, s environment.Sampler) *Episode {
	e := &Episode{grid: g, slip: s}
	e.Reset()
	return e
}

// SetGrid binds the Episode to a new Grid and resets it
func (e *Episode) SetGrid(g *Grid) {
	e.grid = g
	e.Reset()
}

// Grid returns the Grid the Episode is played on
func (e *Episode) Grid() *Grid {
	return e.grid
}

// Reset places the agent back on the start cell and begins a new
// episode
func (e *Episode) Reset() timestep.TimeStep {
	e.x, e.y = 0, 0
	e.ended = false
	e.number = 0
	e.last = timestep.New(timestep.First, 0, 1.0, e.x, e.y, e.number)

	return e.last
}

// PerformAction executes action a and returns whether the episode has
// ended.
//
// The action slips before it is executed: see SlipClockwise and
// SlipCounterClockwise. Moves that would leave the grid or enter a
// Wall are absorbed, leaving the agent in place. Entering a Mine or the
// Finish ends the episode. Once an episode has ended the agent no
// longer moves until Reset() is called.
func (e *Episode) PerformAction(a environment.Action) bool {
	if !a.Valid() {
		panic(fmt.Sprintf("performAction: invalid action %v", a))
	}
	if e.ended || e.grid == nil {
		return e.ended
	}

	roll := e.slip.Rand()
	if roll < SlipClockwise {
		a = a.Clockwise()
	} else if roll < SlipClockwise+SlipCounterClockwise {
		a = a.CounterClockwise()
	}

	dx, dy := a.Offset()
	newX, newY := e.x+dx, e.y+dy

	if e.grid.InBounds(newX, newY) && e.grid.cell(newX, newY) != Wall {
		e.x, e.y = newX, newY
		e.ended = e.grid.cell(newX, newY).Terminal()
	}

	e.number++
	stepType, discount := timestep.Mid, 1.0
	if e.ended {
		stepType, discount = timestep.Last, 0.0
	}
	e.last = timestep.New(stepType, e.CurrentReward(), discount, e.x, e.y,
		e.number)

	return e.ended
}

// CurrentReward returns the reward of the cell the agent is standing
// on, or 0 if no Grid is bound
func (e *Episode) CurrentReward() float64 {
	if e.grid == nil || !e.grid.InBounds(e.x, e.y) {
		return 0.0
	}
	return e.grid.cell(e.x, e.y).Reward()
}

// CurrentX returns the x coordinate of the agent
func (e *Episode) CurrentX() int {
	return e.x
}

// CurrentY returns the y coordinate of the agent
func (e *Episode) CurrentY() int {
	return e.y
}

// HasEnded returns whether the current episode has ended
func (e *Episode) HasEnded() bool {
	return e.ended
}

// Dims returns the dimensions of the bound Grid, or (0, 0) if no Grid
// is bound
func (e *Episode) Dims() (width, height int) {
	if e.grid == nil {
		return 0, 0
	}
	return e.grid.Dims()
}

// LastTimeStep returns the most recent TimeStep of the episode
func (e *Episode) LastTimeStep() timestep.TimeStep {
	return e.last
}

func (e *Episode) String() string {
	str := "Episode | At: (%d, %d)  |  Ended: %v  |  Steps: %d"
	return fmt.Sprintf(str, e.x, e.y, e.ended, e.number)
}

// Package agent defines the interfaces and configuration shared by
// learning agents
package agent

import (
	"github.com/pkg/errors"
	"github.com/samuelfneumann/minegrid/environment"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNotAttached is returned when a Learner is asked to learn
	// without being attached to an environment
	ErrNotAttached = errors.New("learner is not attached to an environment")

	// ErrInvariantViolation is the panic value raised when a Learner's
	// internal state is found to be impossible, e.g. when no action in
	// a state has a value greater than -∞
	ErrInvariantViolation = errors.New("invariant violation")
)

// Learner implements a learning algorithm which acts in and learns from
// an environment.Environment.
//
// A training driver calls Reset() on the environment, StartEpisode(),
// then Step() until the environment has ended, then EndEpisode(). All
// calls must be confined to a single goroutine. Only the diagnostic
// methods ValueAt(), MaxValueAt(), VisitCount() and MaxValues() are
// side-effect free.
type Learner interface {
	// Attach binds the Learner to an environment, resizing and
	// zeroing its tables to fit the environment's grid
	Attach(env environment.Environment)

	// Reset zeroes the Learner's tables
	Reset()

	// StartEpisode prepares the Learner for a new episode
	StartEpisode()

	// Step selects and performs a single action and updates the
	// Learner from the observed transition
	Step() error

	// EndEpisode returns the total reward seen during the episode
	EndEpisode() float64

	// ValueAt returns the learned value of taking action a in state
	// (x, y), or 0 for unknown states
	ValueAt(x, y int, a environment.Action) float64

	// MaxValueAt returns the largest learned value in state (x, y), or
	// 0 for unknown states
	MaxValueAt(x, y int) float64

	// MaxValues returns a height x width matrix whose element
	// (height-1-y, x) is MaxValueAt(x, y), so that the top row of the
	// matrix is the top row of the grid
	MaxValues() *mat.Dense
}

// Counter is a Learner that counts how often each action was selected
// in each state
type Counter interface {
	Learner
	VisitCount(x, y int, a environment.Action) int
}

// Package environment outlines the interfaces and types shared by
// environments and the agents that learn in them
package environment

import "github.com/samuelfneumann/minegrid/timestep"

// Sampler samples a value from some distribution each time Rand() is
// called. Both distuv.Uniform and distuv.Categorical satisfy Sampler,
// so environments and agents can own a seeded distribution and tests
// can substitute a scripted one.
type Sampler interface {
	Rand() float64
}

// Environment implements an episodic environment in which an agent
// moves around a grid of cells.
//
// An Environment is driven one action at a time. The current state is
// the agent's (x, y) position and the reward observed after an action
// is the reward of the cell the agent is currently standing on.
type Environment interface {
	// Reset starts a new episode
	Reset() timestep.TimeStep

	// PerformAction executes an action and returns whether the
	// episode has ended
	PerformAction(a Action) bool

	CurrentReward() float64
	CurrentX() int
	CurrentY() int
	HasEnded() bool

	// Dims returns the width and height of the grid the environment is
	// played on. A zero width or height indicates that no grid is
	// bound.
	Dims() (width, height int)

	// LastTimeStep returns the TimeStep produced by the most recent
	// call to Reset() or PerformAction()
	LastTimeStep() timestep.TimeStep
}

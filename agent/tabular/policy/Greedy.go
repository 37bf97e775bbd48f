// Package policy implements action selection policies over tabular
// action values
package policy

import (
	"github.com/pkg/errors"
	"github.com/samuelfneumann/minegrid/agent"
	"github.com/samuelfneumann/minegrid/environment"
	"github.com/samuelfneumann/minegrid/utils/floatutils"
)

// Policy selects an action given the values of all actions in the
// current state
type Policy interface {
	SelectAction(values [environment.NumActions]float64) environment.Action
}

// Greedy implements a greedy policy. Ties are broken in favour of the
// action that comes first in enumeration order.
type Greedy struct{}

// NewGreedy creates a new Greedy policy
func NewGreedy() Greedy {
	return Greedy{}
}

// SelectAction selects the action with the strictly greatest value.
//
// SelectAction panics with agent.ErrInvariantViolation if no value is
// greater than -∞, which can only happen if the values are all -∞ or
// NaN.
func (Greedy) SelectAction(values [environment.NumActions]float64) environment.Action {
	i, ok := floatutils.Argmax(values[:])
	if !ok {
		panic(errors.Wrapf(agent.ErrInvariantViolation,
			"selectAction: no finite action value in %v", values))
	}
	return environment.Action(i)
}

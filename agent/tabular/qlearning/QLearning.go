// Package qlearning implements the tabular Q-Learning algorithm.
//
// The learner keeps one action value per (state, action) pair of the
// grid it is attached to, acts ε-greedily with respect to those values
// and updates them with the one-step Q-Learning rule:
//
//	Q(s, a) <- Q(s, a) + α(r + γ max_a' Q(s', a') - Q(s, a))
//
// When a transition ends the episode, every action value of the
// terminal state s' is set to the reward r and the bootstrap term is
// dropped from the update.
package qlearning

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/minegrid/agent"
	"github.com/samuelfneumann/minegrid/agent/tabular/policy"
	"github.com/samuelfneumann/minegrid/environment"
	"gonum.org/v1/gonum/mat"
)

// QLearning implements the Q-Learning algorithm over a table of action
// values. QLearning implements agent.Counter.
type QLearning struct {
	env    environment.Environment
	policy policy.Policy
	table

	learningRate float64
	discount     float64

	totalReward float64
}

// New creates a new QLearning agent with an ε-greedy behaviour policy
// seeded with seed. If env is not nil the agent is attached to it.
func New(env environment.Environment, c agent.Config,
	seed uint64) (*QLearning, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	behaviour := policy.NewEGreedy(c.Epsilon, seed)
	return NewWithPolicy(env, c, behaviour)
}

// NewWithPolicy creates a new QLearning agent which selects actions
// using p. The Epsilon field of c is ignored. If env is not nil the
// agent is attached to it.
func NewWithPolicy(env environment.Environment, c agent.Config,
	p policy.Policy) (*QLearning, error) {
	// Epsilon is owned by the policy
	c.Epsilon = 0
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("newWithPolicy: %v", err)
	}

	q := &QLearning{
		policy:       p,
		learningRate: c.LearningRate,
		discount:     c.Discount,
	}
	if env != nil {
		q.Attach(env)
	}
	return q, nil
}

// Attach binds the agent to env, resizing the value and visit count
// tables to env's grid and zeroing them
func (q *QLearning) Attach(env environment.Environment) {
	q.env = env
	width, height := env.Dims()
	q.table.resize(width, height)
	q.totalReward = 0
}

// Reset zeroes the value and visit count tables without changing the
// environment the agent is attached to
func (q *QLearning) Reset() {
	q.table.zero()
}

// StartEpisode zeroes the reward accumulated over the episode. The
// first action of the episode is taken by the first call to Step().
func (q *QLearning) StartEpisode() {
	q.totalReward = 0
}

// Step selects an action in the environment's current state, performs
// it and updates the action value of the state-action pair from the
// observed transition.
//
// Step returns agent.ErrNotAttached if the agent is not attached to an
// environment with a grid. Calling Step after the episode has ended
// does nothing.
func (q *QLearning) Step() error {
	if q.env == nil || len(q.values) == 0 {
		return agent.ErrNotAttached
	}
	if q.env.HasEnded() {
		return nil
	}

	x, y := q.env.CurrentX(), q.env.CurrentY()
	current := q.record(x, y)

	action := q.policy.SelectAction(*current)
	if !action.Valid() {
		panic(fmt.Sprintf("step: policy selected invalid action %v", action))
	}
	qOld := current[action]

	// Perform the action and perceive the environment
	ended := q.env.PerformAction(action)
	reward := q.env.CurrentReward()
	next := q.record(q.env.CurrentX(), q.env.CurrentY())
	qMax := next.Max()

	if ended {
		// The terminal state's value is its reward, regardless of action
		next.Fill(reward)
	}
	current[action] = q.update(qOld, reward, qMax, ended)

	q.totalReward += reward
	q.count(x, y)[action]++

	return nil
}

// update returns the updated estimate of an action value qOld after
// observing reward and the maximum action value qMax of the next state.
// The bootstrap term is dropped for terminal transitions.
func (q *QLearning) update(qOld, reward, qMax float64, terminal bool) float64 {
	target := reward
	if !terminal {
		target += q.discount * qMax
	}
	return qOld + q.learningRate*(target-qOld)
}

// EndEpisode returns the total reward seen since StartEpisode() was
// called
func (q *QLearning) EndEpisode() float64 {
	return q.totalReward
}

// ValueAt returns the value of taking action a in state (x, y). If the
// agent is not attached or the state or action are invalid, ValueAt
// returns 0.
func (q *QLearning) ValueAt(x, y int, a environment.Action) float64 {
	if !q.inBounds(x, y) || !a.Valid() {
		return 0.0
	}
	return q.record(x, y)[a]
}

// MaxValueAt returns the maximum action value in state (x, y), or 0 if
// the agent is not attached or the state is invalid
func (q *QLearning) MaxValueAt(x, y int) float64 {
	if !q.inBounds(x, y) {
		return 0.0
	}
	return q.record(x, y).Max()
}

// VisitCount returns the number of times action a was selected in
// state (x, y), or 0 if the agent is not attached or the state or
// action are invalid
func (q *QLearning) VisitCount(x, y int, a environment.Action) int {
	if !q.inBounds(x, y) || !a.Valid() {
		return 0
	}
	return q.count(x, y)[a]
}

// MaxValues returns a height x width matrix of the maximum action
// value in each state, with the top row of the grid in row 0. If the
// agent is not attached to a grid, MaxValues returns nil.
func (q *QLearning) MaxValues() *mat.Dense {
	if len(q.values) == 0 {
		return nil
	}

	m := mat.NewDense(q.height, q.width, nil)
	for y := 0; y < q.height; y++ {
		for x := 0; x < q.width; x++ {
			m.Set(q.height-1-y, x, q.record(x, y).Max())
		}
	}
	return m
}

// ValueRange returns the smallest and largest maximum action value over
// all states, widened to include the interval [0, 1]
func ValueRange(values *mat.Dense) (min, max float64) {
	min, max = 0.0, 1.0
	if values == nil {
		return
	}

	r, c := values.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			min = math.Min(min, values.At(i, j))
			max = math.Max(max, values.At(i, j))
		}
	}
	return
}

func (q *QLearning) String() string {
	return fmt.Sprintf("QLearning | α: %v  |  γ: %v  |  Table: (%d, %d)",
		q.learningRate, q.discount, q.width, q.height)
}

package policy

import (
	"fmt"

	"github.com/samuelfneumann/minegrid/environment"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// EGreedy implements an ε-greedy policy. With probability 1-ε the
// greedy action is selected, otherwise an action is selected uniformly
// at random, ignoring the action values.
type EGreedy struct {
	greedy  Greedy
	epsilon float64
	roll    environment.Sampler // Uniform [0, 1) exploration rolls
	random  environment.Sampler // Uniform categorical over actions

	selections   int
	explorations int
}

// NewEGreedy constructs a new EGreedy policy, where e=epislon is the
// probability with which a random action is selected
func NewEGreedy(e float64, seed uint64) *EGreedy {
	source := rand.NewSource(seed)
	roll := distuv.Uniform{Min: 0.0, Max: 1.0, Src: source}

	weights := make([]float64, environment.NumActions)
	for i := range weights {
		weights[i] = 1.0 / float64(len(weights))
	}
	random := distuv.NewCategorical(weights, source)

	return NewEGreedyWithSamplers(e, roll, random)
}

// NewEGreedyWithSamplers constructs a new EGreedy policy which draws
// exploration rolls in [0, 1) from roll and random action indices from
// random
func NewEGreedyWithSamplers(e float64, roll,
	random environment.Sampler) *EGreedy {
	if e < 0 || e > 1 {
		panic(fmt.Sprintf("newEGreedy: epsilon must be in [0, 1], have %v",
			e))
	}
	return &EGreedy{greedy: NewGreedy(), epsilon: e, roll: roll,
		random: random}
}

// SelectAction selects an action from the ε-greedy policy. The greedy
// action is taken whenever the exploration roll exceeds ε.
func (p *EGreedy) SelectAction(values [environment.NumActions]float64) environment.Action {
	p.selections++

	if p.roll.Rand() > p.epsilon {
		return p.greedy.SelectAction(values)
	}

	p.explorations++
	return environment.Action(int(p.random.Rand()))
}

// Epsilon returns the probability of selecting a random action
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// ExplorationRate returns the fraction of selections so far that were
// random
func (p *EGreedy) ExplorationRate() float64 {
	if p.selections == 0 {
		return 0.0
	}
	return float64(p.explorations) / float64(p.selections)
}

package agent

import (
	"fmt"
)

// Default learning constants
const (
	DefaultEpsilon      float64 = 0.03
	DefaultLearningRate float64 = 0.2
	DefaultDiscount     float64 = 0.98
)

// Config represents a configuration of a tabular, ε-greedy learning
// agent
type Config struct {
	Epsilon      float64 // probability of selecting a random action
	LearningRate float64 // step size α
	Discount     float64 // discount factor γ
}

// DefaultConfig returns the Config with the default learning constants
func DefaultConfig() Config {
	return Config{
		Epsilon:      DefaultEpsilon,
		LearningRate: DefaultLearningRate,
		Discount:     DefaultDiscount,
	}
}

// Validate returns an error describing whether or not the
// configuration is valid
func (c Config) Validate() error {
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("validate: epsilon must be in [0, 1], have %v",
			c.Epsilon)
	}
	if c.LearningRate <= 0 || c.LearningRate > 1 {
		return fmt.Errorf("validate: learning rate must be in (0, 1], "+
			"have %v", c.LearningRate)
	}
	if c.Discount < 0 || c.Discount > 1 {
		return fmt.Errorf("validate: discount must be in [0, 1], have %v",
			c.Discount)
	}
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("Config | ε: %v  |  α: %v  |  γ: %v", c.Epsilon,
		c.LearningRate, c.Discount)
}

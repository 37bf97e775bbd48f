// Package experiment implements functionality for running training
// sessions of an agent in an environment
package experiment

import (
	"context"

	"github.com/samuelfneumann/minegrid/experiment/trackers"
)

// Interface Experiment outlines structs that can run experiments.
// The Run() method runs all episodes of the experiment, or stops early
// once its context is cancelled. The RunEpisode() method runs a single
// episode and returns the total reward seen in it.
//
// Experiments send each TimeStep to Trackers using the Tracker's
// Track() method. The Tracker then determines which data from the
// TimeStep it caches and saves. New Trackers can be registered with an
// Experiment through the constructor or through an Experiment's
// Register() method. The Save() method saves all tracked data to disk.
type Experiment interface {
	Run(ctx context.Context) error
	RunEpisode(ctx context.Context) (float64, error)
	Register(t trackers.Tracker)
	Save() error
}

package experiment

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/minegrid/agent"
	env "github.com/samuelfneumann/minegrid/environment"
	"github.com/samuelfneumann/minegrid/experiment/trackers"
	ts "github.com/samuelfneumann/minegrid/timestep"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Online is an Experiment that trains an agent online for a fixed
// number of episodes.
//
// All calls into the environment and agent happen on the goroutine
// that calls Run(). Other goroutines may poll Progress(), History()
// and Snapshot() at any time; these only read copies published by
// Run() between steps.
type Online struct {
	env.Environment
	agent.Learner
	episodes int
	trackers []trackers.Tracker
	delay    time.Duration
	logger   *slog.Logger

	mu        sync.RWMutex
	completed int
	history   []float64
	snapshot  *mat.Dense
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The episodes parameter determines
// how many episodes the experiment is run for, and the t parameter
// is a list of trackers.Tracker which determine what data is saved.
func NewOnline(e env.Environment, a agent.Learner, episodes int,
	t ...trackers.Tracker) *Online {
	return &Online{
		Environment: e,
		Learner:     a,
		episodes:    episodes,
		trackers:    t,
		logger:      slog.Default(),
	}
}

// Register registers a trackers.Tracker with an Experiment so that
// data generated during the experiment can be tracked and saved
func (o *Online) Register(t trackers.Tracker) {
	o.trackers = append(o.trackers, t)
}

// SetDelay sets a pause taken after every step, so that an observer can
// follow the agent. A snapshot is published after every step while the
// delay is positive.
func (o *Online) SetDelay(d time.Duration) {
	o.delay = d
}

// SetLogger sets the logger used to report the session's progress
func (o *Online) SetLogger(l *slog.Logger) {
	o.logger = l
}

// Run attaches the agent to the environment, which zeroes its tables,
// and runs all episodes of the experiment.
//
// Cancellation of ctx is checked before every episode and every step,
// so a cancelled session stops between two environment steps. Run then
// returns ctx.Err(). Episodes cut short are not recorded.
func (o *Online) Run(ctx context.Context) error {
	o.Learner.Attach(o.Environment)

	o.mu.Lock()
	o.completed = 0
	o.history = make([]float64, 0, o.episodes)
	o.snapshot = o.Learner.MaxValues()
	o.mu.Unlock()

	o.logger.Info("training started", "episodes", o.episodes)

	for o.Completed() < o.episodes {
		if err := ctx.Err(); err != nil {
			return o.cancelled(err)
		}

		ret, err := o.RunEpisode(ctx)
		if errors.Is(err, context.Canceled) ||
			errors.Is(err, context.DeadlineExceeded) {
			return o.cancelled(err)
		} else if err != nil {
			return errors.Wrap(err, "run")
		}

		o.mu.Lock()
		o.history = append(o.history, ret)
		o.completed++
		o.snapshot = o.Learner.MaxValues()
		o.mu.Unlock()
	}

	o.logger.Info("training finished", "episodes", o.episodes,
		"mean_return", o.MeanReturn())
	return nil
}

// RunEpisode runs a single episode of the experiment and returns the
// total reward the agent received
func (o *Online) RunEpisode(ctx context.Context) (float64, error) {
	step := o.Environment.Reset()
	o.track(step)
	o.Learner.StartEpisode()

	for !o.Environment.HasEnded() {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		if err := o.Learner.Step(); err != nil {
			return 0, errors.Wrap(err, "runEpisode")
		}
		o.track(o.Environment.LastTimeStep())

		if o.delay > 0 {
			o.publish()
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			case <-time.After(o.delay):
			}
		}
	}

	return o.Learner.EndEpisode(), nil
}

// Save saves the data cached by the Trackers to disk
func (o *Online) Save() error {
	for _, tracker := range o.trackers {
		if err := tracker.Save(); err != nil {
			return err
		}
	}
	return nil
}

// Progress returns the number of completed episodes and the total
// number of episodes
func (o *Online) Progress() (completed, total int) {
	return o.Completed(), o.episodes
}

// Completed returns the number of completed episodes
func (o *Online) Completed() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.completed
}

// History returns the return of every completed episode
func (o *Online) History() []float64 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return append([]float64(nil), o.history...)
}

// MeanReturn returns the mean return over all completed episodes
func (o *Online) MeanReturn() float64 {
	history := o.History()
	if len(history) == 0 {
		return 0.0
	}
	return stat.Mean(history, nil)
}

// Snapshot returns a copy of the most recently published per-state
// maximum action values. See agent.Learner.MaxValues() for the layout.
// Snapshot returns nil before Run() is called.
func (o *Online) Snapshot() *mat.Dense {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.snapshot == nil {
		return nil
	}
	return mat.DenseCopyOf(o.snapshot)
}

// publish publishes the agent's current values as the snapshot
func (o *Online) publish() {
	values := o.Learner.MaxValues()

	o.mu.Lock()
	o.snapshot = values
	o.mu.Unlock()
}

func (o *Online) cancelled(err error) error {
	o.logger.Info("training cancelled", "completed", o.Completed(),
		"episodes", o.episodes)
	return err
}

// track tracks the current timestep by caching its data in each tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}

// Package config provides the configuration of a training run: the
// layout of the grid, the learning constants and where results are
// written. Configurations are JSON serializable and can be loaded from
// the environment or a .env file.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/samuelfneumann/minegrid/agent"
	"github.com/samuelfneumann/minegrid/environment/gridworld"
)

// ErrInvalidConfig is returned when a Config fails validation
var ErrInvalidConfig = errors.New("invalid config")

// Environment variables read by Load
const (
	EnvWidth          = "MINEGRID_WIDTH"
	EnvHeight         = "MINEGRID_HEIGHT"
	EnvWalls          = "MINEGRID_WALLS"
	EnvMines          = "MINEGRID_MINES"
	EnvEpisodes       = "MINEGRID_EPISODES"
	EnvSeed           = "MINEGRID_SEED"
	EnvEpsilon        = "MINEGRID_EPSILON"
	EnvLearningRate   = "MINEGRID_LEARNING_RATE"
	EnvDiscount       = "MINEGRID_DISCOUNT"
	EnvDelay          = "MINEGRID_DELAY"
	EnvReturns        = "MINEGRID_RETURNS"
	EnvEpisodeLengths = "MINEGRID_EPISODE_LENGTHS"
	EnvHeatmap        = "MINEGRID_HEATMAP"
	EnvChart          = "MINEGRID_CHART"
)

// Config implements a configuration of a training run
type Config struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Walls    int    `json:"walls"`
	Mines    int    `json:"mines"`
	Episodes int    `json:"episodes"`
	Seed     uint64 `json:"seed"`

	Agent agent.Config `json:"agent"`

	// Delay is a pause taken after every step of the agent
	Delay time.Duration `json:"delay"`

	// Output files, each is skipped when empty
	Returns        string `json:"returns,omitempty"`
	EpisodeLengths string `json:"episode_lengths,omitempty"`
	Heatmap        string `json:"heatmap,omitempty"`
	Chart          string `json:"chart,omitempty"`
}

// Default returns the default Config: a 10x10 grid with 5 walls and 5
// mines, trained for 10000 episodes with the default learning
// constants
func Default() Config {
	return Config{
		Width:    10,
		Height:   10,
		Walls:    5,
		Mines:    5,
		Episodes: 10_000,
		Seed:     uint64(time.Now().UnixNano()),
		Agent:    agent.DefaultConfig(),
	}
}

// Load returns the default Config overridden by MINEGRID_* environment
// variables. Variables are first loaded from the given .env files, or
// from ./.env if none are given; a missing .env file is not an error.
func Load(filenames ...string) (Config, error) {
	if err := godotenv.Load(filenames...); err != nil {
		slog.Debug(".env file not loaded", "error", err)
	}

	c := Default()
	ints := map[string]*int{
		EnvWidth:    &c.Width,
		EnvHeight:   &c.Height,
		EnvWalls:    &c.Walls,
		EnvMines:    &c.Mines,
		EnvEpisodes: &c.Episodes,
	}
	for key, field := range ints {
		if err := lookup(key, field, strconv.Atoi); err != nil {
			return Config{}, err
		}
	}

	parseSeed := func(s string) (uint64, error) {
		return strconv.ParseUint(s, 10, 64)
	}
	if err := lookup(EnvSeed, &c.Seed, parseSeed); err != nil {
		return Config{}, err
	}

	parseFloat := func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	}
	floats := map[string]*float64{
		EnvEpsilon:      &c.Agent.Epsilon,
		EnvLearningRate: &c.Agent.LearningRate,
		EnvDiscount:     &c.Agent.Discount,
	}
	for key, field := range floats {
		if err := lookup(key, field, parseFloat); err != nil {
			return Config{}, err
		}
	}

	if err := lookup(EnvDelay, &c.Delay, time.ParseDuration); err != nil {
		return Config{}, err
	}

	strs := map[string]*string{
		EnvReturns:        &c.Returns,
		EnvEpisodeLengths: &c.EpisodeLengths,
		EnvHeatmap:        &c.Heatmap,
		EnvChart:          &c.Chart,
	}
	for key, field := range strs {
		if value, ok := os.LookupEnv(key); ok {
			*field = value
		}
	}

	return c, nil
}

// lookup parses the environment variable key into field if it is set
func lookup[T any](key string, field *T, parse func(string) (T, error)) error {
	value, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}

	parsed, err := parse(value)
	if err != nil {
		return errors.Wrapf(err, "load: environment variable %v=%q", key,
			value)
	}
	*field = parsed
	return nil
}

// Validate returns an error describing whether or not the
// configuration is valid
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return errors.Wrapf(ErrInvalidConfig, "grid size (%d, %d)", c.Width,
			c.Height)
	}
	if c.Walls < 0 || c.Mines < 0 {
		return errors.Wrapf(ErrInvalidConfig, "walls %d, mines %d", c.Walls,
			c.Mines)
	}
	if c.Episodes < 1 {
		return errors.Wrapf(ErrInvalidConfig, "episodes %d", c.Episodes)
	}
	if c.Delay < 0 {
		return errors.Wrapf(ErrInvalidConfig, "delay %v", c.Delay)
	}
	if err := c.Agent.Validate(); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return nil
}

// Create returns the grid and episode described by the Config. The
// grid is laid out with CreateMap, so it is at least
// gridworld.MinLayoutSize wide and high.
func (c Config) Create() (*gridworld.Grid, *gridworld.Episode, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}

	g, err := gridworld.CreateMap(c.Width, c.Height, c.Walls, c.Mines,
		c.GridSeed())
	if err != nil {
		return nil, nil, errors.Wrap(err, "create")
	}
	return g, gridworld.NewEpisode(g, c.EpisodeSeed()), nil
}

// GridSeed returns the seed of the grid's layout generator
func (c Config) GridSeed() uint64 { return c.Seed }

// EpisodeSeed returns the seed of the episode's slippage rolls
func (c Config) EpisodeSeed() uint64 { return c.Seed + 1 }

// AgentSeed returns the seed of the agent's exploration
func (c Config) AgentSeed() uint64 { return c.Seed + 2 }

func (c Config) String() string {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return string(data)
}

package main

import (
	"time"

	"github.com/samuelfneumann/minegrid/config"
	"github.com/spf13/cobra"
)

// gridFlags holds the flags that override the layout of the grid
type gridFlags struct {
	width, height int
	walls, mines  int
	seed          uint64
}

func (f *gridFlags) register(cmd *cobra.Command) {
	d := config.Default()
	cmd.Flags().IntVar(&f.width, "width", d.Width, "Width of the grid")
	cmd.Flags().IntVar(&f.height, "height", d.Height, "Height of the grid")
	cmd.Flags().IntVar(&f.walls, "walls", d.Walls, "Number of walls")
	cmd.Flags().IntVar(&f.mines, "mines", d.Mines, "Number of mines")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0,
		"Seed of all random sources (default time based)")
}

// apply overrides c with every flag set on the command line
func (f *gridFlags) apply(cmd *cobra.Command, c *config.Config) {
	set := cmd.Flags().Changed
	if set("width") {
		c.Width = f.width
	}
	if set("height") {
		c.Height = f.height
	}
	if set("walls") {
		c.Walls = f.walls
	}
	if set("mines") {
		c.Mines = f.mines
	}
	if set("seed") {
		c.Seed = f.seed
	}
}

// teachFlags holds the flags of the teach command
type teachFlags struct {
	gridFlags
	episodes       int
	epsilon        float64
	learningRate   float64
	discount       float64
	delay          time.Duration
	returns        string
	episodeLengths string
	heatmap        string
	chart          string
}

func (f *teachFlags) register(cmd *cobra.Command) {
	f.gridFlags.register(cmd)

	d := config.Default()
	cmd.Flags().IntVar(&f.episodes, "episodes", d.Episodes,
		"Number of episodes to teach")
	cmd.Flags().Float64Var(&f.epsilon, "epsilon", d.Agent.Epsilon,
		"Exploration rate")
	cmd.Flags().Float64Var(&f.learningRate, "learning-rate",
		d.Agent.LearningRate, "Learning rate")
	cmd.Flags().Float64Var(&f.discount, "discount", d.Agent.Discount,
		"Discount factor")
	cmd.Flags().DurationVar(&f.delay, "delay", 0,
		"Pause after every step, to follow the agent")
	cmd.Flags().StringVar(&f.returns, "returns", "",
		"Save the return of every episode to this file")
	cmd.Flags().StringVar(&f.episodeLengths, "episode-lengths", "",
		"Save the length of every episode to this file")
	cmd.Flags().StringVar(&f.heatmap, "heatmap", "",
		"Draw the learned values as a PNG heatmap to this file")
	cmd.Flags().StringVar(&f.chart, "chart", "",
		"Draw the returns as an HTML chart to this file")
}

func (f *teachFlags) apply(cmd *cobra.Command, c *config.Config) {
	f.gridFlags.apply(cmd, c)

	set := cmd.Flags().Changed
	if set("episodes") {
		c.Episodes = f.episodes
	}
	if set("epsilon") {
		c.Agent.Epsilon = f.epsilon
	}
	if set("learning-rate") {
		c.Agent.LearningRate = f.learningRate
	}
	if set("discount") {
		c.Agent.Discount = f.discount
	}
	if set("delay") {
		c.Delay = f.delay
	}
	if set("returns") {
		c.Returns = f.returns
	}
	if set("episode-lengths") {
		c.EpisodeLengths = f.episodeLengths
	}
	if set("heatmap") {
		c.Heatmap = f.heatmap
	}
	if set("chart") {
		c.Chart = f.chart
	}
}

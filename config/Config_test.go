package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/minegrid/agent"
	"github.com/samuelfneumann/minegrid/environment/gridworld"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, 10, c.Width)
	assert.Equal(t, 10, c.Height)
	assert.Equal(t, 5, c.Walls)
	assert.Equal(t, 5, c.Mines)
	assert.Equal(t, 10_000, c.Episodes)
	assert.Equal(t, agent.DefaultConfig(), c.Agent)
	assert.NoError(t, c.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(EnvWidth, "6")
	t.Setenv(EnvHeight, "4")
	t.Setenv(EnvMines, "0")
	t.Setenv(EnvSeed, "42")
	t.Setenv(EnvEpsilon, "0.1")
	t.Setenv(EnvDelay, "5ms")
	t.Setenv(EnvChart, "rewards.html")

	c, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 6, c.Width)
	assert.Equal(t, 4, c.Height)
	assert.Equal(t, 5, c.Walls)
	assert.Equal(t, 0, c.Mines)
	assert.Equal(t, uint64(42), c.Seed)
	assert.Equal(t, 0.1, c.Agent.Epsilon)
	assert.Equal(t, agent.DefaultLearningRate, c.Agent.LearningRate)
	assert.Equal(t, 5*time.Millisecond, c.Delay)
	assert.Equal(t, "rewards.html", c.Chart)
}

func TestLoadFromDotEnv(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.env")
	data := EnvEpisodes + "=25\n" + EnvDiscount + "=0.9\n"
	require.NoError(t, os.WriteFile(file, []byte(data), 0o600))

	t.Cleanup(func() {
		os.Unsetenv(EnvEpisodes)
		os.Unsetenv(EnvDiscount)
	})

	c, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, 25, c.Episodes)
	assert.Equal(t, 0.9, c.Agent.Discount)
}

func TestLoadInvalidValue(t *testing.T) {
	t.Setenv(EnvWidth, "wide")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	invalid := []func(*Config){
		func(c *Config) { c.Width = 0 },
		func(c *Config) { c.Height = -1 },
		func(c *Config) { c.Walls = -1 },
		func(c *Config) { c.Episodes = 0 },
		func(c *Config) { c.Delay = -time.Second },
		func(c *Config) { c.Agent.Epsilon = 1.5 },
		func(c *Config) { c.Agent.LearningRate = 0 },
		func(c *Config) { c.Agent.Discount = 2 },
	}

	for i, modify := range invalid {
		c := Default()
		modify(&c)
		err := c.Validate()
		assert.True(t, errors.Is(err, ErrInvalidConfig), "case %d: %v", i, err)
	}
}

func TestCreate(t *testing.T) {
	c := Default()
	c.Width, c.Height, c.Seed = 1, 3, 9

	g, e, err := c.Create()
	require.NoError(t, err)

	w, h := g.Dims()
	assert.Equal(t, gridworld.MinLayoutSize, w)
	assert.Equal(t, 3, h)
	assert.Same(t, g, e.Grid())

	finish, _ := g.At(w-1, h-1)
	assert.Equal(t, gridworld.Finish, finish)

	c.Episodes = 0
	_, _, err = c.Create()
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

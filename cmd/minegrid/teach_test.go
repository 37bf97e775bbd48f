package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/samuelfneumann/minegrid/config"
	"github.com/samuelfneumann/minegrid/experiment/trackers"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()

	c := config.Default()
	c.Width, c.Height = 3, 3
	c.Walls, c.Mines = 0, 0
	c.Episodes = 20
	c.Seed = 1
	c.Returns = filepath.Join(dir, "returns.bin")
	c.EpisodeLengths = filepath.Join(dir, "lengths.bin")
	c.Heatmap = filepath.Join(dir, "values.png")
	c.Chart = filepath.Join(dir, "chart.html")
	return c
}

func TestTeach(t *testing.T) {
	noColor = true
	c := testConfig(t)

	require.NoError(t, teach(context.Background(), c))

	returns, err := trackers.LoadData(c.Returns)
	require.NoError(t, err)
	assert.Len(t, returns, 20)

	lengths, err := trackers.Load[int](c.EpisodeLengths)
	require.NoError(t, err)
	assert.Len(t, lengths, 20)

	assert.FileExists(t, c.Heatmap)
	assert.FileExists(t, c.Chart)
}

func TestTeachInterrupted(t *testing.T) {
	noColor = true
	c := testConfig(t)
	c.Episodes = 1_000_000
	c.Delay = time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(),
		50*time.Millisecond)
	defer cancel()

	require.NoError(t, teach(ctx, c))

	returns, err := trackers.LoadData(c.Returns)
	require.NoError(t, err)
	assert.Less(t, len(returns), c.Episodes)
}

func TestTeachFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "teach"}
	var flags teachFlags
	flags.register(cmd)

	require.NoError(t, cmd.Flags().Set("width", "7"))
	require.NoError(t, cmd.Flags().Set("epsilon", "0.5"))
	require.NoError(t, cmd.Flags().Set("delay", "3ms"))
	require.NoError(t, cmd.Flags().Set("chart", "out.html"))

	c := config.Default()
	flags.apply(cmd, &c)

	assert.Equal(t, 7, c.Width)
	assert.Equal(t, 10, c.Height)
	assert.Equal(t, 0.5, c.Agent.Epsilon)
	assert.Equal(t, config.Default().Agent.Discount, c.Agent.Discount)
	assert.Equal(t, 3*time.Millisecond, c.Delay)
	assert.Equal(t, "out.html", c.Chart)
	assert.Empty(t, c.Heatmap)
}

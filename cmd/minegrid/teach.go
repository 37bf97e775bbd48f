package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/minegrid/agent/tabular/qlearning"
	"github.com/samuelfneumann/minegrid/config"
	"github.com/samuelfneumann/minegrid/experiment"
	"github.com/samuelfneumann/minegrid/experiment/trackers"
	"github.com/samuelfneumann/minegrid/render"
	"github.com/samuelfneumann/minegrid/utils/progressbar"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// refresh is the period at which the progress bar is redrawn
const refresh = 200 * time.Millisecond

// TeachCommand returns the command that runs a teaching session
func TeachCommand() *cobra.Command {
	var flags teachFlags

	cmd := &cobra.Command{
		Use:   "teach",
		Short: "Teach the agent for a number of episodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(envFiles()...)
			if err != nil {
				return err
			}
			flags.apply(cmd, &c)
			return teach(cmd.Context(), c)
		},
	}
	flags.register(cmd)
	return cmd
}

// teach runs a teaching session described by c and writes its outputs.
// An interrupted session still writes the results of the episodes
// completed so far.
func teach(ctx context.Context, c config.Config) error {
	g, e, err := c.Create()
	if err != nil {
		return err
	}
	slog.Info("config loaded", "config", c.String())

	q, err := qlearning.New(nil, c.Agent, c.AgentSeed())
	if err != nil {
		return errors.Wrap(err, "teach")
	}

	session := experiment.NewOnline(e, q, c.Episodes)
	session.SetDelay(c.Delay)
	session.SetLogger(slog.Default())
	if c.Returns != "" {
		session.Register(trackers.NewReturn(c.Returns))
	}
	if c.EpisodeLengths != "" {
		session.Register(trackers.NewEpisodeLength(c.EpisodeLengths))
	}

	if err := render.Fprint(os.Stdout, g, nil, !noColor); err != nil {
		return err
	}

	bar := progressbar.New(os.Stderr, 40, c.Episodes)
	status := func() string {
		return fmt.Sprintf("mean return: %.3f", session.MeanReturn())
	}

	group, groupCtx := errgroup.WithContext(ctx)
	watchCtx, stopWatch := context.WithCancel(groupCtx)
	defer stopWatch()

	group.Go(func() error {
		defer stopWatch()
		return session.Run(groupCtx)
	})
	group.Go(func() error {
		progressbar.Watch(watchCtx, bar, session, refresh, status)
		return nil
	})

	err = group.Wait()
	if errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		slog.Warn("teaching interrupted, saving partial results",
			"completed", session.Completed())
	} else if err != nil {
		return err
	}

	if err := session.Save(); err != nil {
		return errors.Wrap(err, "teach")
	}

	values := session.Snapshot()
	if err := render.Fprint(os.Stdout, g, values, !noColor); err != nil {
		return err
	}
	if c.Heatmap != "" {
		if err := render.SaveHeatmap(c.Heatmap, g, values); err != nil {
			return err
		}
		slog.Info("heatmap saved", "file", c.Heatmap)
	}
	if c.Chart != "" {
		if err := render.SaveRewardChart(c.Chart, session.History()); err != nil {
			return err
		}
		slog.Info("chart saved", "file", c.Chart)
	}
	return nil
}

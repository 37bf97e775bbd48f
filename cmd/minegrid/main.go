// Command minegrid teaches a Q-learning agent to cross a gridworld of
// mines and walls
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	envFile  string
	logLevel string
	noColor  bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT,
		syscall.SIGTERM)
	defer stop()

	root := &cobra.Command{
		Use:           "minegrid",
		Short:         "Q-learning on a gridworld of mines and walls",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger()
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env", "",
		"Load MINEGRID_* variables from this .env file (default ./.env)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Log level: debug, info, warn or error")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Print the grid without ANSI colours")

	root.AddCommand(TeachCommand())
	root.AddCommand(MapCommand())

	if err := root.ExecuteContext(ctx); err != nil {
		slog.Error("minegrid failed", "error", err)
		stop()
		os.Exit(1)
	}
}

// setupLogger installs the default logger. Every record carries the id
// of this run.
func setupLogger() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return err
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler).With("run", uuid.NewString()))
	return nil
}

// envFiles returns the .env files named on the command line
func envFiles() []string {
	if envFile == "" {
		return nil
	}
	return []string{envFile}
}

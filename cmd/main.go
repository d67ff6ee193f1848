package main

import (
	"context"
	"os"

	"github.com/desertthunder/falcon/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)
	runner := NewRunner(RunnerOpts{Logger: logger})

	if err := newApp(runner).Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}

func newApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:     "falcon",
		Usage:    "Plan tasks, track goals and review your calendar",
		Version:  "0.1.0",
		Flags:    r.flags(),
		Before:   r.Before,
		After:    r.After,
		Commands: r.register(),
	}
}

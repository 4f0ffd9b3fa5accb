package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/queuesim/pkg/display"
	"github.com/huynhanx03/queuesim/pkg/random"
	"github.com/huynhanx03/queuesim/pkg/settings"
	"github.com/huynhanx03/queuesim/pkg/simulation/mm1"
	"github.com/huynhanx03/queuesim/pkg/timer"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [LAMBDA MU]",
		Short: "Simulate an M/M/1 queue with a live text display",
		Long: "Simulate an M/M/1 queue with arrival rate LAMBDA and service rate MU.\n" +
			"Runs until interrupted unless --departures is set.",
		Example: "  queuesim run .20 .33\n  queuesim run .20 .21 --pace 0 --every 1000",
		Args:    ratesArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd, args, map[string]string{
				"simulation.departures": "departures",
				"simulation.seed":       "seed",
				"simulation.max_wait":   "max-wait",
				"display.pace":          "pace",
				"display.every":         "every",
				"display.width":         "width",
				"display.clear":         "clear",
			}); err != nil {
				return err
			}
			return a.run(cmd.Context(), cmd)
		},
	}

	defaults := settings.Defaults()
	f := cmd.Flags()
	f.Int64("departures", 0, "stop after this many departures (0 runs until interrupted)")
	f.Uint64("seed", 0, "random seed (0 picks one from the clock)")
	f.Int("max-wait", defaults.Simulation.MaxWait, "last histogram bucket")
	f.Int("pace", defaults.Display.Pace, "milliseconds between frames")
	f.Int("every", defaults.Display.Every, "render every N departures")
	f.Int("width", defaults.Display.Width, "widest histogram bar")
	f.Bool("clear", defaults.Display.Clear, "clear the terminal between frames")
	return cmd
}

func (a *app) run(ctx context.Context, cmd *cobra.Command) error {
	cfg := a.cfg

	pacer := timer.NewPacer(time.Duration(cfg.Display.Pace) * time.Millisecond)
	defer pacer.Stop()
	release := context.AfterFunc(ctx, pacer.Stop)
	defer release()

	screen := display.NewText(cmd.OutOrStdout(), display.Options{
		Every: cfg.Display.Every,
		Width: cfg.Display.Width,
		Clear: cfg.Display.Clear,
	}, pacer, a.logger)

	sim, err := mm1.New(a.simConfig(), random.New(cfg.Simulation.Seed),
		mm1.WithObserver(screen),
		mm1.WithLogger(a.logger),
	)
	if err != nil {
		return err
	}

	a.logger.Info("simulation started",
		zap.Float64("lambda", cfg.Simulation.ArrivalRate),
		zap.Float64("mu", cfg.Simulation.ServiceRate),
		zap.Uint64("seed", cfg.Simulation.Seed),
		zap.Int64("departures", cfg.Simulation.Departures),
	)

	err = sim.Run(ctx, cfg.Simulation.Departures)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	a.logger.Info("simulation stopped",
		zap.Int64("served", sim.Served()),
		zap.Float64("avg_wait", sim.AverageWait()),
		zap.Float64("avg_delay", sim.AverageDelay()),
		zap.Int("in_system", sim.QueueLen()),
		zap.Bool("interrupted", err != nil),
	)
	printComparison(cmd, sim.Config(), sim.AverageWait(), sim.AverageDelay())
	return nil
}

func printComparison(cmd *cobra.Command, cfg mm1.Config, wait, delay float64) {
	out := cmd.OutOrStdout()
	theory, err := mm1.Predict(cfg.ArrivalRate, cfg.ServiceRate)
	if err != nil {
		fmt.Fprintf(out, "rho = %.3f: no steady state, waits grow without bound\n", theory.Utilization)
		return
	}
	fmt.Fprintf(out, "rho = %.3f\n", theory.Utilization)
	fmt.Fprintf(out, "time in system:  simulated %.3f, expected %.3f\n", wait, theory.Sojourn)
	fmt.Fprintf(out, "time in queue:   simulated %.3f, expected %.3f\n", delay, theory.Delay)
}

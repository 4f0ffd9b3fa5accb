package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/queuesim/pkg/random"
	"github.com/huynhanx03/queuesim/pkg/settings"
	"github.com/huynhanx03/queuesim/pkg/simulation/mm1"
)

const defaultBatchDepartures = 100000

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "batch [LAMBDA MU]",
		Short:   "Run independent replications and compare with theory",
		Example: "  queuesim batch .20 .33 --replications 16 --departures 200000",
		Args:    ratesArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd, args, map[string]string{
				"simulation.departures": "departures",
				"simulation.seed":       "seed",
				"batch.replications":    "replications",
				"batch.parallel":        "parallel",
			}); err != nil {
				return err
			}
			return a.batch(cmd)
		},
	}

	defaults := settings.Defaults()
	f := cmd.Flags()
	f.Int64("departures", defaultBatchDepartures, "departures per replication")
	f.Uint64("seed", 0, "base seed; replication i uses seed+i (0 picks one from the clock)")
	f.Int("replications", defaults.Batch.Replications, "number of independent runs")
	f.Int("parallel", defaults.Batch.Parallel, "concurrent runs (0 uses GOMAXPROCS)")
	return cmd
}

func (a *app) batch(cmd *cobra.Command) error {
	cfg := a.cfg
	departures := cfg.Simulation.Departures
	if departures <= 0 {
		departures = defaultBatchDepartures
	}

	seeds := make([]uint64, cfg.Batch.Replications)
	for i := range seeds {
		seeds[i] = cfg.Simulation.Seed + uint64(i)
	}

	a.logger.Info("batch started",
		zap.Float64("lambda", cfg.Simulation.ArrivalRate),
		zap.Float64("mu", cfg.Simulation.ServiceRate),
		zap.Int("replications", len(seeds)),
		zap.Int64("departures", departures),
		zap.Uint64("base_seed", cfg.Simulation.Seed),
	)

	sum, err := mm1.Replicate(cmd.Context(), a.simConfig(), newSampler, mm1.ReplicateOptions{
		Departures: departures,
		Seeds:      seeds,
		Parallel:   cfg.Batch.Parallel,
		Logger:     a.logger,
	})
	if err != nil {
		return errors.Wrap(err, "replicate")
	}

	a.logger.Info("batch finished",
		zap.Float64("mean_wait", sum.MeanWait),
		zap.Float64("half_width", sum.HalfWidth),
	)
	return writeSummary(cmd.OutOrStdout(), a.simConfig(), sum)
}

func newSampler(seed uint64) mm1.Sampler {
	return random.New(seed)
}

func writeSummary(w io.Writer, cfg mm1.Config, sum mm1.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEED\tSERVED\tAVG WAIT\tAVG DELAY")
	for _, r := range sum.Replications {
		fmt.Fprintf(tw, "%d\t%d\t%.3f\t%.3f\n", r.Seed, r.Served, r.AverageWait, r.AverageDelay)
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "write replications")
	}

	fmt.Fprintf(w, "\nmean wait  %.3f +/- %.3f (95%%)\n", sum.MeanWait, sum.HalfWidth)
	fmt.Fprintf(w, "mean delay %.3f\n", sum.MeanDelay)

	theory, err := mm1.Predict(cfg.ArrivalRate, cfg.ServiceRate)
	if err != nil {
		_, err = fmt.Fprintf(w, "rho = %.3f: no steady state\n", theory.Utilization)
		return errors.Wrap(err, "write summary")
	}
	_, err = fmt.Fprintf(w, "expected   wait %.3f, delay %.3f (rho = %.3f)\n",
		theory.Sojourn, theory.Delay, theory.Utilization)
	return errors.Wrap(err, "write summary")
}

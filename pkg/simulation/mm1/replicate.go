package mm1

import (
	"context"
	"math"
	"runtime"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/queuesim/pkg/stats"
)

// z95 is the two-sided 95% normal quantile.
const z95 = 1.959963984540054

// SamplerFactory builds an independent sampler for one replication.
type SamplerFactory func(seed uint64) Sampler

// Replication is the outcome of one independent run.
type Replication struct {
	Seed         uint64
	Served       int64
	AverageWait  float64
	AverageDelay float64
}

// Summary aggregates the replication means.
type Summary struct {
	Replications []Replication
	MeanWait     float64
	StdDevWait   float64
	HalfWidth    float64 // 95% confidence half-width of MeanWait
	MeanDelay    float64
}

// ReplicateOptions controls Replicate.
type ReplicateOptions struct {
	Departures int64 // per replication, must be > 0
	Seeds      []uint64
	Parallel   int // 0 uses GOMAXPROCS
	Logger     *zap.Logger
}

// Replicate runs one simulation per seed, each confined to its own goroutine,
// and summarizes the per-run average waits.
func Replicate(ctx context.Context, cfg Config, newSampler SamplerFactory, opts ReplicateOptions) (Summary, error) {
	if opts.Departures <= 0 {
		return Summary{}, errors.Wrapf(ErrInvalidParameter, "departures = %d", opts.Departures)
	}
	if len(opts.Seeds) == 0 {
		return Summary{}, errors.Wrap(ErrInvalidParameter, "no seeds")
	}
	if newSampler == nil {
		return Summary{}, errors.Wrap(ErrInvalidParameter, "nil sampler factory")
	}
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	parallel := opts.Parallel
	if parallel <= 0 {
		parallel = runtime.GOMAXPROCS(0)
	}

	results := make([]Replication, len(opts.Seeds))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, seed := range opts.Seeds {
		g.Go(func() error {
			sim, err := New(cfg, newSampler(seed), WithLogger(logger))
			if err != nil {
				return err
			}
			if err := sim.Run(gctx, opts.Departures); err != nil {
				return errors.Wrapf(err, "replication %d (seed %d)", i, seed)
			}
			results[i] = Replication{
				Seed:         seed,
				Served:       sim.Served(),
				AverageWait:  sim.AverageWait(),
				AverageDelay: sim.AverageDelay(),
			}
			logger.Debug("replication finished",
				zap.Int("index", i),
				zap.Uint64("seed", seed),
				zap.Float64("avg_wait", results[i].AverageWait),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	return summarize(results), nil
}

func summarize(results []Replication) Summary {
	waits := make([]float64, len(results))
	delays := make([]float64, len(results))
	for i, r := range results {
		waits[i] = r.AverageWait
		delays[i] = r.AverageDelay
	}

	s := Summary{
		Replications: results,
		MeanWait:     stats.Mean(waits),
		StdDevWait:   stats.StdDev(waits),
		MeanDelay:    stats.Mean(delays),
		HalfWidth:    math.NaN(),
	}
	if len(results) > 1 {
		s.HalfWidth = z95 * s.StdDevWait / math.Sqrt(float64(len(results)))
	}
	return s
}

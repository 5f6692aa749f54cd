// Command sweep runs one sim configuration across a range of seeds and
// reports aggregate statistics for the resulting trajectories.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"braitenberg/internal/app"
	applog "braitenberg/internal/observability/log"
	"braitenberg/internal/scenario"
	_ "braitenberg/internal/sims/avoidance"
	_ "braitenberg/internal/sims/phototaxis"
)

type stats struct {
	Runs       int
	MeanDisp   float64
	StdDisp    float64
	MedianDisp float64
	P90Disp    float64
	MeanReject float64
	MaxReject  int
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	seeds := flag.Int("seeds", 64, "number of seeds to run")
	first := flag.Int64("first-seed", 1, "first seed of the range")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	verify := flag.Bool("verify", false, "rerun every seed and compare trajectory fingerprints")
	flag.Parse()

	logger, err := applog.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	s, err := cfg.Resolve()
	if err != nil {
		logger.Fatal("resolve scenario", zap.Error(err))
	}
	if *seeds < 1 {
		logger.Fatal("need at least one seed", zap.Int("seeds", *seeds))
	}

	logger.Info("sweeping",
		zap.String("sim", s.Sim),
		zap.Int("seeds", *seeds),
		zap.Int64("first_seed", *first),
		zap.Int("workers", *workers),
		zap.Bool("verify", *verify))

	start := time.Now()
	results, err := sweep(context.Background(), s, *first, *seeds, *workers, *verify, logger)
	if err != nil {
		logger.Fatal("sweep failed", zap.Error(err))
	}
	agg := aggregate(results)

	sort.Slice(results, func(i, j int) bool { return results[i].Displacement > results[j].Displacement })
	for i := 0; i < len(results) && i < 5; i++ {
		logger.Info("top result", append([]zap.Field{zap.Int("rank", i+1)}, results[i].Fields()...)...)
	}
	logger.Info("sweep complete",
		zap.Int("runs", agg.Runs),
		zap.Float64("displacement_mean", agg.MeanDisp),
		zap.Float64("displacement_std", agg.StdDisp),
		zap.Float64("displacement_median", agg.MedianDisp),
		zap.Float64("displacement_p90", agg.P90Disp),
		zap.Float64("rejections_mean", agg.MeanReject),
		zap.Int("rejections_max", agg.MaxReject),
		zap.Duration("elapsed", time.Since(start).Round(time.Millisecond)))
}

// sweep runs seeds first..first+n-1. Every worker builds its own sim from s.
// Results are returned in seed order.
func sweep(ctx context.Context, s *scenario.Scenario, first int64, n, workers int, verify bool, logger *zap.Logger) ([]app.Summary, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]app.Summary, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range n {
		seed := first + int64(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sim, err := s.Build(logger)
			if err != nil {
				return err
			}
			summary, _ := app.Run(sim, seed)
			if verify {
				again, _ := app.Run(sim, seed)
				if again.Fingerprint != summary.Fingerprint {
					return fmt.Errorf("seed %d: fingerprint %x then %x", seed, summary.Fingerprint, again.Fingerprint)
				}
			}
			logger.Debug("seed done", summary.Fields()...)
			results[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func aggregate(results []app.Summary) stats {
	out := stats{Runs: len(results)}
	if len(results) == 0 {
		return out
	}
	disp := make([]float64, len(results))
	rej := make([]float64, len(results))
	for i, r := range results {
		disp[i] = r.Displacement
		rej[i] = float64(r.Rejections)
		if r.Rejections > out.MaxReject {
			out.MaxReject = r.Rejections
		}
	}
	out.MeanDisp, out.StdDisp = stat.MeanStdDev(disp, nil)
	out.MeanReject = stat.Mean(rej, nil)
	sort.Float64s(disp)
	out.MedianDisp = stat.Quantile(0.5, stat.Empirical, disp, nil)
	out.P90Disp = stat.Quantile(0.9, stat.Empirical, disp, nil)
	return out
}

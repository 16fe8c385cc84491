// forsortbench runs forsort's three entry points against synthetic
// data and logs timing and comparison counts. It is a demo/benchmark
// driver, not part of the library's public surface.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/stew675/forsort"
)

func main() {
	size := flag.Int("size", 100000, "number of elements per sort")
	runs := flag.Int("runs", 4, "number of concurrent sorts to fan out")
	dist := flag.String("dist", "random", "input distribution: random, sorted, reversed, dups")
	seed := flag.Int64("seed", time.Now().UnixNano(), "PRNG seed")
	entry := flag.String("entry", "all", "entry point to run: basic, stable, inplace, all")
	flag.Parse()

	log := buildLogger()
	log = log.Named("main")

	if *size < 0 {
		fmt.Println("Usage: ./forsortbench -size=<n> -runs=<n> -dist=random|sorted|reversed|dups -entry=basic|stable|inplace|all")
		os.Exit(1)
	}

	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < *runs; i++ {
		i := i
		runSeed := *seed + int64(i)
		g.Go(func() error {
			return runBench(ctx, log, *size, *dist, *entry, runSeed)
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatal("benchmark run failed", zap.Error(err))
	}
}

func runBench(ctx context.Context, log *zap.Logger, size int, dist, entry string, seed int64) error {
	runID := uuid.New()
	log = log.With(zap.String("run_id", runID.String()))

	data, err := generateInput(size, dist, seed)
	if err != nil {
		return fmt.Errorf("generate input: %w", err)
	}

	cmp := countingLessOf[int](func(a, b int) bool { return a < b })

	entries := []string{entry}
	if entry == "all" {
		entries = []string{"basic", "stable", "inplace"}
	}

	for _, e := range entries {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		cmp.reset()
		work := append([]int(nil), data...)

		less := cmp.wrap()

		start := time.Now()
		switch e {
		case "basic":
			forsort.Basic(work, less)
		case "stable":
			forsort.Stable(work, less)
		case "inplace":
			forsort.InPlace(work, less, nil)
		default:
			return fmt.Errorf("unknown entry point %q", e)
		}
		elapsed := time.Since(start)

		log.Info("sort complete",
			zap.String("entry", e),
			zap.String("dist", dist),
			zap.Int("n", size),
			zap.Duration("elapsed", elapsed),
			zap.Int64("comparisons", cmp.count()),
		)
	}

	return nil
}

func generateInput(n int, dist string, seed int64) ([]int, error) {
	r := rand.New(rand.NewSource(seed))
	data := make([]int, n)

	switch dist {
	case "random":
		for i := range data {
			data[i] = r.Int()
		}
	case "sorted":
		for i := range data {
			data[i] = i
		}
	case "reversed":
		for i := range data {
			data[i] = n - i
		}
	case "dups":
		spread := n/100 + 1
		for i := range data {
			data[i] = r.Intn(spread)
		}
	default:
		return nil, fmt.Errorf("unknown distribution %q", dist)
	}

	return data, nil
}

// countingLess wraps a comparator with an atomic-free call counter;
// each benchmark run uses its own instance from a single goroutine, so
// plain increments are safe.
type countingLess[T any] struct {
	less func(a, b T) bool
	n    int64
}

func countingLessOf[T any](less func(a, b T) bool) *countingLess[T] {
	return &countingLess[T]{less: less}
}

func (c *countingLess[T]) reset()       { c.n = 0 }
func (c *countingLess[T]) count() int64 { return c.n }

func (c *countingLess[T]) wrap() forsort.LessFunc[T] {
	return func(a, b T) bool {
		c.n++
		return c.less(a, b)
	}
}

func buildLogger() *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.EncoderConfig.TimeKey = ""
	logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logConfig.DisableStacktrace = true
	logConfig.DisableCaller = true
	return zap.Must(logConfig.Build())
}

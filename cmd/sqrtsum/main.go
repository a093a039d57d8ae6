// Command sqrtsum times Σ sqrt(x[i]) over a random array with four strategies:
// scalar, vectorized, parallel scalar and parallel vectorized.
//
// Usage:
//
//	sqrtsum [flags] [threads] [n]
//
// threads defaults to 8 and n to 1048576. The array holds independent
// uniform values in [0, 1).
//
// Examples:
//
//	sqrtsum
//	sqrtsum 4 10000000
//	sqrtsum -repeat 5 -seed 1 16
//	sqrtsum -kernels
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/cwbudde/algo-sqrtsum/internal/sqrtsum"
	"github.com/cwbudde/algo-sqrtsum/reduce"
)

const (
	defaultThreads = 8
	defaultLength  = 1024 * 1024
)

type config struct {
	threads int
	n       int
	seed    int64
	repeat  int
	workers int
	verbose bool
	kernels bool
}

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	if cfg.kernels {
		printKernels(stdout)
		return 0
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	coord, err := reduce.NewCoordinator(
		reduce.WithLogger(logger),
		reduce.WithWorkerLimit(cfg.workers),
	)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	x, err := reduce.AllocAligned(cfg.n)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	fillUniform(x, cfg.seed)

	logger.Debug("input ready", "n", cfg.n, "seed", cfg.seed, "kernel", reduce.Implementation())

	rep := &report{threads: cfg.threads, n: cfg.n, kernel: reduce.Implementation()}
	rep.add("scalar", cfg.repeat, func() (float64, error) {
		return reduce.Scalar(x), nil
	})
	rep.add("vectorized", cfg.repeat, func() (float64, error) {
		return reduce.Vectorized(x), nil
	})
	for _, mode := range []reduce.Mode{reduce.ModeScalar, reduce.ModeVectorized} {
		rep.add("parallel "+mode.String(), cfg.repeat, func() (float64, error) {
			res, err := coord.Reduce(x, cfg.threads, mode)
			return res.Sum, err
		})
	}

	if err := rep.write(stdout); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: failed to write report: %v\n", err)
		return 1
	}
	return rep.exitCode()
}

func parseArgs(args []string, stderr io.Writer) (config, error) {
	cfg := config{threads: defaultThreads, n: defaultLength}

	fs := flag.NewFlagSet("sqrtsum", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Int64Var(&cfg.seed, "seed", time.Now().UnixNano(), "random seed for the input array")
	fs.IntVar(&cfg.repeat, "repeat", 1, "runs per strategy; the fastest is reported")
	fs.IntVar(&cfg.workers, "workers", 0, "maximum workers started per parallel run (0 = one per partition)")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging on stderr")
	fs.BoolVar(&cfg.kernels, "kernels", false, "list the vectorized kernels usable on this CPU and exit")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: sqrtsum [flags] [threads] [n]\n\n")
		_, _ = fmt.Fprintf(stderr, "Compares scalar, vectorized and parallel sums of square roots.\n")
		_, _ = fmt.Fprintf(stderr, "threads defaults to %d, n to %d.\n\n", defaultThreads, defaultLength)
		_, _ = fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	rest := fs.Args()
	if len(rest) > 2 {
		return cfg, fmt.Errorf("%w: at most two positional arguments, got %d", errUsage, len(rest))
	}
	if len(rest) > 0 {
		v, err := strconv.Atoi(rest[0])
		if err != nil || v <= 0 {
			return cfg, fmt.Errorf("%w: threads must be a positive integer, got %q", errUsage, rest[0])
		}
		cfg.threads = v
	}
	if len(rest) > 1 {
		v, err := strconv.Atoi(rest[1])
		if err != nil || v < 0 {
			return cfg, fmt.Errorf("%w: n must be a non-negative integer, got %q", errUsage, rest[1])
		}
		cfg.n = v
	}
	if cfg.repeat < 1 {
		return cfg, fmt.Errorf("%w: -repeat must be at least 1", errUsage)
	}
	return cfg, nil
}

func fillUniform(x []float64, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := range x {
		x[i] = rng.Float64()
	}
}

func printKernels(w io.Writer) {
	for i, k := range sqrtsum.Kernels() {
		marker := " "
		if i == 0 {
			marker = "*"
		}
		_, _ = fmt.Fprintf(w, "%s %-8s priority %d\n", marker, k.Name, k.Priority)
	}
}

package reduce

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/cpu"
)

// Result describes one parallel reduction.
type Result struct {
	// Sum is the merged total of every launched partition.
	Sum float64
	// Mode is the per-partition reducer that was used.
	Mode Mode
	// Threads is the requested worker count.
	Threads int
	// Partitions is the plan computed by Partition.
	Partitions []Range
	// Launched counts partitions that ran on a worker.
	Launched int
	// Skipped lists partitions whose worker could not be started.
	Skipped []Range
}

// Complete reports whether every partition contributed to Sum.
func (r Result) Complete() bool { return len(r.Skipped) == 0 }

// Coordinator fans a reduction out over goroutines. It holds configuration
// only; every Reduce call gets its own accumulator and lock, so one
// Coordinator may serve concurrent calls.
type Coordinator struct {
	opts options
}

// NewCoordinator returns a Coordinator configured by opts.
func NewCoordinator(opts ...Option) (*Coordinator, error) {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workerLimit < 0 {
		return nil, fmt.Errorf("%w: worker limit %d must not be negative", ErrInvalidArgument, o.workerLimit)
	}
	return &Coordinator{opts: o}, nil
}

// accumulator is the shared partial-sum target of one Reduce call.
type accumulator struct {
	_   cpu.CacheLinePad
	mu  sync.Mutex
	sum float64
	_   cpu.CacheLinePad
}

func (a *accumulator) add(partial float64) {
	a.mu.Lock()
	a.sum += partial
	a.mu.Unlock()
}

// Reduce computes Σ sqrt(x[i]) with one worker per partition of
// Partition(len(x), threads), each using the reducer selected by mode.
//
// Arguments are validated before any worker starts. If some partitions cannot
// be launched, Reduce still joins the workers it did start and returns their
// total together with a *LaunchError; Result is valid in that case.
func (c *Coordinator) Reduce(x []float64, threads int, mode Mode) (Result, error) {
	reducer, err := mode.reducer()
	if err != nil {
		return Result{}, err
	}
	ranges, err := Partition(len(x), threads)
	if err != nil {
		return Result{}, err
	}

	log := c.opts.logger.With("mode", mode.String(), "threads", threads)
	log.Debug("reduce plan",
		"n", len(x),
		"chunk", ChunkSize(len(x), threads),
		"partitions", len(ranges),
	)

	res := Result{Mode: mode, Threads: threads, Partitions: ranges}
	acc := &accumulator{}

	var g errgroup.Group
	if c.opts.workerLimit > 0 {
		g.SetLimit(c.opts.workerLimit)
	}

	// Workers hold until every launch has been attempted, which makes the
	// outcome of a worker limit independent of scheduling.
	start := make(chan struct{})
	for i, r := range ranges {
		view := r.Of(x)
		launched := g.TryGo(func() error {
			<-start
			if c.opts.lockThreads {
				runtime.LockOSThread()
				defer runtime.UnlockOSThread()
			}
			acc.add(reducer(view))
			return nil
		})
		if !launched {
			res.Skipped = append(res.Skipped, r)
			log.Warn("worker not launched",
				"partition", i,
				"start", r.Start,
				"len", r.Len,
			)
			continue
		}
		res.Launched++
	}
	close(start)

	_ = g.Wait() // workers never fail

	res.Sum = acc.sum
	if len(res.Skipped) > 0 {
		return res, &LaunchError{
			Partitions: len(ranges),
			Launched:   res.Launched,
			Skipped:    res.Skipped,
		}
	}

	log.Debug("reduce done", "launched", res.Launched, "sum", res.Sum)
	return res, nil
}

var defaultCoordinator = &Coordinator{opts: options{logger: slog.New(slog.DiscardHandler)}}

// Parallel is Reduce on a default Coordinator (no logging, no worker limit),
// returning just the total.
func Parallel(x []float64, threads int, mode Mode) (float64, error) {
	res, err := defaultCoordinator.Reduce(x, threads, mode)
	return res.Sum, err
}

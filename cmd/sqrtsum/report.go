package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"

	"github.com/cwbudde/algo-sqrtsum/reduce"
)

type measurement struct {
	name  string
	value float64
	best  time.Duration
	err   error
}

type report struct {
	threads int
	n       int
	kernel  string
	rows    []measurement
}

// add runs fn repeat times and keeps the fastest wall-clock time.
func (r *report) add(name string, repeat int, fn func() (float64, error)) {
	m := measurement{name: name}
	for i := 0; i < repeat; i++ {
		begin := time.Now()
		v, err := fn()
		elapsed := time.Since(begin)
		if i == 0 || elapsed < m.best {
			m.best = elapsed
		}
		m.value, m.err = v, err
	}
	r.rows = append(r.rows, m)
}

func (r *report) write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "threads = %d\nn = %d\nkernel = %s\n\n", r.threads, r.n, r.kernel); err != nil {
		return err
	}

	base := r.rows[0].best
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Strategy\tValue\tTime [s]\tSpeedup\tNote\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "--------\t-----\t--------\t-------\t----\n"); err != nil {
		return err
	}
	for _, m := range r.rows {
		note := ""
		var launchErr *reduce.LaunchError
		if errors.As(m.err, &launchErr) {
			note = fmt.Sprintf("degraded: %d/%d workers", launchErr.Launched, launchErr.Partitions)
		} else if m.err != nil {
			note = m.err.Error()
		}
		if _, err := fmt.Fprintf(tw, "%s\t%f\t%e\t%.3f\t%s\n",
			m.name,
			m.value,
			m.best.Seconds(),
			speedup(base, m.best),
			note,
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// exitCode is 1 when any strategy returned an error.
func (r *report) exitCode() int {
	failed := lo.Filter(r.rows, func(m measurement, _ int) bool { return m.err != nil })
	if len(failed) > 0 {
		return 1
	}
	return 0
}

func speedup(base, t time.Duration) float64 {
	if t <= 0 {
		return 0
	}
	return base.Seconds() / t.Seconds()
}

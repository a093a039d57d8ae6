package reduce

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports a non-positive thread count, a negative
	// length, an unknown Mode or a negative worker limit.
	ErrInvalidArgument = errors.New("reduce: invalid argument")

	// ErrAllocation reports an aligned allocation that cannot be satisfied.
	ErrAllocation = errors.New("reduce: allocation failed")

	// ErrThreadLaunch reports partitions whose worker was never started.
	ErrThreadLaunch = errors.New("reduce: worker launch failed")
)

// LaunchError is returned alongside a valid, degraded Result when one or more
// partitions could not be assigned a worker. The Result sum omits exactly the
// Skipped ranges.
type LaunchError struct {
	Partitions int
	Launched   int
	Skipped    []Range
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("reduce: %d of %d workers not launched (%d elements omitted)",
		len(e.Skipped), e.Partitions, Covered(e.Skipped))
}

func (e *LaunchError) Unwrap() error { return ErrThreadLaunch }

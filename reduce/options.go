package reduce

import "log/slog"

type options struct {
	logger      *slog.Logger
	workerLimit int
	lockThreads bool
}

// Option configures a Coordinator.
type Option func(*options)

// WithLogger sets the logger used for plan and launch diagnostics.
// A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
	}
}

// WithWorkerLimit caps how many workers one Reduce call may start. Partitions
// beyond the cap are not launched: Reduce reports them through a *LaunchError
// and returns the sum of the partitions that ran. Zero means no cap; a
// negative limit is rejected by NewCoordinator.
func WithWorkerLimit(n int) Option {
	return func(o *options) {
		o.workerLimit = n
	}
}

// WithOSThreads pins every worker to its own OS thread for the duration of
// its partition (runtime.LockOSThread).
func WithOSThreads() Option {
	return func(o *options) {
		o.lockThreads = true
	}
}

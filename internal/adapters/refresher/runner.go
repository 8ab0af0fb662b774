// Package refresher provides a background loop that re-primes the merged
// listings snapshot before its TTL lapses, so interactive requests rarely
// pay the cost of a cold fan-out.
package refresher

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
)

// listingRefresher is the slice of the aggregator the runner needs.
type listingRefresher interface {
	Refresh(ctx context.Context) ([]model.JobListing, error)
}

// Runner periodically refreshes the aggregated listings snapshot.
// It runs until the context is cancelled and never stops on refresh errors.
type Runner struct {
	aggregator listingRefresher
	interval   time.Duration
	timeout    time.Duration
	primeOnRun bool
	logger     *slog.Logger
}

// RunnerOptions holds the dependencies for creating a Runner.
type RunnerOptions struct {
	Aggregator listingRefresher

	// Interval between refreshes. An interval of zero disables the runner:
	// Run returns immediately and listings refresh lazily on demand.
	Interval time.Duration

	// Timeout bounds a single refresh. Defaults to one minute.
	Timeout time.Duration

	// PrimeOnRun refreshes once immediately when Run starts, before the
	// first tick, so the snapshot is warm as soon as the server is up.
	PrimeOnRun bool

	Logger *slog.Logger
}

// NewRunner creates a new refresh runner with the given options.
func NewRunner(opts RunnerOptions) (*Runner, error) {
	if opts.Aggregator == nil {
		return nil, errors.New("aggregator is required")
	}
	if opts.Interval < 0 {
		return nil, errors.New("interval must not be negative")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 1 * time.Minute
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Runner{
		aggregator: opts.Aggregator,
		interval:   opts.Interval,
		timeout:    opts.Timeout,
		primeOnRun: opts.PrimeOnRun,
		logger:     opts.Logger.With("component", "listing_refresher"),
	}, nil
}

// Run starts the refresh loop and runs until the context is cancelled.
// A cancelled context is a clean shutdown and returns nil.
func (r *Runner) Run(ctx context.Context) error {
	if r.interval == 0 {
		r.logger.InfoContext(ctx, "listing refresher disabled")
		return nil
	}

	r.logger.InfoContext(ctx, "starting listing refresher", "interval", r.interval)

	if r.primeOnRun {
		r.refresh(ctx)
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.InfoContext(ctx, "listing refresher stopping", "reason", ctx.Err())
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()

		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

// refresh performs one bounded refresh and logs the outcome. Errors are
// logged and swallowed so a flaky upstream cannot kill the loop.
func (r *Runner) refresh(ctx context.Context) {
	refreshCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	listings, err := r.aggregator.Refresh(refreshCtx)
	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		r.logger.ErrorContext(ctx, "listing refresh failed",
			"error", err,
			"elapsed", elapsed,
		)
		return
	}

	r.logger.InfoContext(ctx, "listing snapshot refreshed",
		"listings", len(listings),
		"elapsed", elapsed,
	)
}

package refresher

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
)

type stubRefresher struct {
	calls atomic.Int64
	err   error
}

func (s *stubRefresher) Refresh(_ context.Context) ([]model.JobListing, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return []model.JobListing{{ID: "internal_1", Title: "Data Analyst"}}, nil
}

func TestNewRunner_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewRunner(RunnerOptions{})
	require.Error(t, err)

	_, err = NewRunner(RunnerOptions{Aggregator: &stubRefresher{}, Interval: -time.Second})
	require.Error(t, err)

	r, err := NewRunner(RunnerOptions{Aggregator: &stubRefresher{}, Interval: time.Minute})
	require.NoError(t, err)
	assert.Equal(t, 1*time.Minute, r.timeout)
}

func TestRunner_ZeroIntervalIsDisabled(t *testing.T) {
	t.Parallel()

	agg := &stubRefresher{}
	r, err := NewRunner(RunnerOptions{Aggregator: agg})
	require.NoError(t, err)

	require.NoError(t, r.Run(context.Background()))
	assert.Zero(t, agg.calls.Load())
}

func TestRunner_RefreshesOnTick(t *testing.T) {
	t.Parallel()

	agg := &stubRefresher{}
	r, err := NewRunner(RunnerOptions{
		Aggregator: agg,
		Interval:   5 * time.Millisecond,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	assert.Eventually(t, func() bool {
		return agg.calls.Load() >= 2
	}, 2*time.Second, time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestRunner_PrimeOnRun(t *testing.T) {
	t.Parallel()

	agg := &stubRefresher{}
	r, err := NewRunner(RunnerOptions{
		Aggregator: agg,
		Interval:   time.Hour,
		PrimeOnRun: true,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	assert.Eventually(t, func() bool {
		return agg.calls.Load() == 1
	}, 2*time.Second, time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestRunner_SurvivesRefreshErrors(t *testing.T) {
	t.Parallel()

	agg := &stubRefresher{err: assert.AnError}
	r, err := NewRunner(RunnerOptions{
		Aggregator: agg,
		Interval:   5 * time.Millisecond,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	assert.Eventually(t, func() bool {
		return agg.calls.Load() >= 3
	}, 2*time.Second, time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

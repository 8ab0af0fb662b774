package data

import "time"

// TimeProvider abstracts the clock so repositories can be tested with a
// deterministic time source.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider implements TimeProvider using the system clock.
type RealTimeProvider struct{}

// Now returns the current system time.
func (r *RealTimeProvider) Now() time.Time { return time.Now() }

// FixedTimeProvider implements TimeProvider with a settable fixed time.
type FixedTimeProvider struct {
	fixedTime time.Time
}

// NewFixedTimeProvider creates a FixedTimeProvider pinned at t.
func NewFixedTimeProvider(t time.Time) *FixedTimeProvider {
	return &FixedTimeProvider{fixedTime: t}
}

// Now returns the fixed time.
func (f *FixedTimeProvider) Now() time.Time { return f.fixedTime }

// SetTime updates the fixed time.
func (f *FixedTimeProvider) SetTime(t time.Time) { f.fixedTime = t }

// AdvanceTime moves the fixed time forward by d.
func (f *FixedTimeProvider) AdvanceTime(d time.Duration) {
	f.fixedTime = f.fixedTime.Add(d)
}

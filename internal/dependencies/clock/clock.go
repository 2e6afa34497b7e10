package clock

import "time"

// Clock provides time operations that can be mocked for testing.
// Timestamps only ever annotate persisted rows; they never feed
// into game decisions.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the system clock
type SystemClock struct{}

// New creates a new SystemClock
func New() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time
func (c *SystemClock) Now() time.Time {
	return time.Now()
}

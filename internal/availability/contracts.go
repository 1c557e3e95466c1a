package availability

import "time"

// TimeProvider abstracts the current time for testing.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Policy decides the availability flag of a synthesized slot. Used in mock
// mode only; with a live backend the occupancy data decides.
type Policy func(start time.Time) bool

// AllAvailable marks every synthesized slot as free.
func AllAvailable(time.Time) bool {
	return true
}

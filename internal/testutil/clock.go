package testutil

import "time"

// FixedClock always reports the same instant.
//
// Document headers embed the current date, so tests and golden snapshots pin
// the clock here to stay byte-identical across runs.
//
// FixedClock is immutable and safe for concurrent use.
type FixedClock struct {
	at time.Time
}

// NewFixedClock creates a clock frozen at the given instant.
func NewFixedClock(at time.Time) *FixedClock {
	return &FixedClock{at: at}
}

// NewFixedClockAt creates a clock frozen at midnight UTC of the given date.
func NewFixedClockAt(year int, month time.Month, day int) *FixedClock {
	return NewFixedClock(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Now returns the frozen instant. Implements document.Clock.
func (c *FixedClock) Now() time.Time {
	return c.at
}

package core

import "time"

// Clock is the time source for issue dates and overdue checks.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant. Useful in tests and for
// rendering a report as of a given moment.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

package determinism

import "time"

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

// Now implements Clock
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant
type FixedClock struct {
	T time.Time
}

// NewFixedClock pins the clock at t
func NewFixedClock(t time.Time) FixedClock {
	return FixedClock{T: t}
}

// Now implements Clock
func (c FixedClock) Now() time.Time {
	return c.T
}

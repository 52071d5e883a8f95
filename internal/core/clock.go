package core

import "time"

// Clock abstracts the wall-clock time source used for real-time cooldowns,
// so tests can control it without sleeping.
type Clock interface {
	Now() time.Time
}

// SystemClock is the real time source.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

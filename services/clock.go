package services

import "time"

// Clock abstracts wall-clock time so engine behavior is deterministic in
// tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

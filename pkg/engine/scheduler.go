package engine

import "time"

// Scheduler runs fn once after d and returns a function that cancels it.
// fn must not run synchronously inside AfterFunc.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (stop func() bool)
}

// SystemScheduler schedules callbacks with time.AfterFunc.
type SystemScheduler struct{}

// AfterFunc wraps time.AfterFunc.
func (SystemScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	return time.AfterFunc(d, fn).Stop
}

package engine

import (
	"log/slog"
	"time"
)

// DefaultSubmitDelay is how long the submit message stays up before the form
// resets.
const DefaultSubmitDelay = time.Second

// Option configures an Engine.
type Option func(*Engine)

// WithScheduler overrides the timer source. Tests pass a manual scheduler.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) {
		if s != nil {
			e.scheduler = s
		}
	}
}

// WithSubmitDelay sets the display delay after a successful submit. Negative
// values are ignored.
func WithSubmitDelay(d time.Duration) Option {
	return func(e *Engine) {
		if d >= 0 {
			e.submitDelay = d
		}
	}
}

// WithObserver registers a callback that receives a snapshot after every
// state change, including changes made by timers. It runs without the engine
// lock held and may call back into the engine.
func WithObserver(fn func(Snapshot)) Option {
	return func(e *Engine) {
		e.observer = fn
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

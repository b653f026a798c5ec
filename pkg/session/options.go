package session

import (
	"log/slog"
	"time"

	"github.com/goliatone/go-formdesk/pkg/engine"
	"github.com/goliatone/go-formdesk/pkg/registry"
	"github.com/goliatone/go-formdesk/pkg/store"
)

// Option customises a Session.
type Option func(*config)

type config struct {
	registry    *registry.Registry
	store       *store.Store
	ids         store.IDGenerator
	scheduler   engine.Scheduler
	logger      *slog.Logger
	submitDelay time.Duration
	deleteDelay time.Duration
	observer    func(engine.Snapshot)
}

// WithRegistry supplies the form types. Defaults to registry.Default().
func WithRegistry(reg *registry.Registry) Option {
	return func(cfg *config) {
		if reg != nil {
			cfg.registry = reg
		}
	}
}

// WithStore supplies a pre-built store, for example one seeded with records.
func WithStore(s *store.Store) Option {
	return func(cfg *config) {
		if s != nil {
			cfg.store = s
		}
	}
}

// WithIDGenerator sets the id generator of the store the session creates.
// Ignored when WithStore is used.
func WithIDGenerator(gen store.IDGenerator) Option {
	return func(cfg *config) {
		if gen != nil {
			cfg.ids = gen
		}
	}
}

// WithScheduler replaces the system timer source.
func WithScheduler(s engine.Scheduler) Option {
	return func(cfg *config) {
		if s != nil {
			cfg.scheduler = s
		}
	}
}

// WithLogger sets the logger shared by the session's components.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithSubmitDelay sets how long submit messages stay up before the form
// resets.
func WithSubmitDelay(d time.Duration) Option {
	return func(cfg *config) {
		if d >= 0 {
			cfg.submitDelay = d
		}
	}
}

// WithDeleteDelay sets how long the delete message stays up.
func WithDeleteDelay(d time.Duration) Option {
	return func(cfg *config) {
		if d >= 0 {
			cfg.deleteDelay = d
		}
	}
}

// WithObserver receives a snapshot after every engine state change.
func WithObserver(fn func(engine.Snapshot)) Option {
	return func(cfg *config) {
		cfg.observer = fn
	}
}

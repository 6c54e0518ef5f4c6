package platform

import (
	"log/slog"
	"time"

	"github.com/inkwell-notes/inkwell/pkg/core"
	"github.com/inkwell-notes/inkwell/pkg/gate"
)

// options holds the internal configuration for the inkwell service.
type options struct {
	repository  core.Repository
	environment gate.Environment
	logger      *slog.Logger
	clock       func() time.Time
	mustExist   bool
	forceTemp   bool
	devSafety   bool
}

// Option defines a functional option for configuring inkwell.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		devSafety: true,
	}
}

// WithLogger sets the logger for the service and the repository.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. mock).
// If provided, the default filesystem adapter is skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithEnvironment allows injecting a custom platform environment for the
// permission gate. Defaults to the host environment.
func WithEnvironment(env gate.Environment) Option {
	return func(o *options) {
		o.environment = env
	}
}

// WithClock overrides the time source used to stamp notes on save.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithMustExist ensures the vault directory must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithForceTemp forces the vault into a temporary directory (useful for
// testing and demos).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.forceTemp = force
	}
}

// WithDevSafety controls the sandbox mechanism when running via `go run`.
// By default (true), the vault is re-rooted into a temporary directory to
// prevent accidental writes to real notes during development.
//
// CAUTION: Only disable this if you are sure your code is safe.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}

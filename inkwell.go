package inkwell

import (
	"log/slog"
	"time"

	"github.com/inkwell-notes/inkwell/internal/platform"
	"github.com/inkwell-notes/inkwell/pkg/core"
	"github.com/inkwell-notes/inkwell/pkg/gate"
)

// --- Types ---

// Note is a public alias for the domain note entity.
type Note = core.Note

// Service is a public alias for the note service.
type Service = core.Service

// Event is a public alias for a vault change event.
type Event = core.Event

// Common errors, re-exported for callers matching with errors.Is.
var (
	ErrPermissionDenied   = core.ErrPermissionDenied
	ErrStorageUnavailable = core.ErrStorageUnavailable
	ErrNotFound           = core.ErrNotFound
)

// NewID returns a fresh unique note ID.
func NewID() string {
	return core.NewID()
}

// --- Configuration ---

// Option defines a functional option for configuring inkwell.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithEnvironment allows injecting a custom platform environment for the
// permission gate (e.g. gate.Granted() for headless runs).
func WithEnvironment(env gate.Environment) Option {
	return platform.WithEnvironment(env)
}

// WithClock overrides the time source used to stamp notes on save.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithMustExist ensures the vault directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithForceTemp forces the vault into a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithDevSafety controls the `go run` sandbox. Enabled by default.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// --- Factory ---

// New creates a new inkwell Service rooted at the given storage root.
// An empty root resolves the platform default; the vault is the "Notes"
// subdirectory underneath it.
func New(root string, opts ...Option) (*core.Service, error) {
	return platform.New(root, opts...)
}

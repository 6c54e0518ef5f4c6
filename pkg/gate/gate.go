// Package gate decides whether the process may touch the notes vault.
//
// Every store operation runs through Gate.EnsureAccess before any
// filesystem access. The decision branches on the platform family and OS
// version reported by an injected Environment, which keeps the gate fully
// testable with fakes.
package gate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/inkwell-notes/inkwell/pkg/core"
)

// Family identifies the platform family the process runs on.
type Family string

const (
	// FamilyAndroid is the mobile OS family where storage permissions
	// depend on the SDK version.
	FamilyAndroid Family = "android"
	// FamilyIOS is the mobile OS family where app-private document storage
	// never requires explicit consent.
	FamilyIOS Family = "ios"
	// FamilyOther covers desktop and server platforms.
	FamilyOther Family = "other"
)

// ScopedStorageVersion is the Android SDK version from which app-scoped
// storage no longer requires an explicit permission grant.
const ScopedStorageVersion = 29

// Status is the binary permission state reported by the platform.
type Status int

const (
	StatusDenied Status = iota
	StatusGranted
)

// Environment is the platform capability the gate consults. It abstracts
// ambient platform state (identity, version, permission surface) into an
// explicit dependency.
type Environment interface {
	// Family reports the platform family.
	Family() Family

	// Version reports the platform OS/SDK version. Only meaningful for
	// FamilyAndroid; others may return 0.
	Version() int

	// Status queries the current permission state without prompting.
	Status(ctx context.Context) (Status, error)

	// Request issues an interactive consent request and blocks until the
	// user responds. The outcome is final for this call; retrying is a
	// fresh user-initiated action.
	Request(ctx context.Context) (Status, error)
}

// Gate implements core.Gate on top of an Environment.
type Gate struct {
	env    Environment
	logger *slog.Logger
}

// New creates a Gate. A nil logger falls back to slog.Default.
func New(env Environment, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{env: env, logger: logger}
}

// EnsureAccess returns nil when the process may read and write the vault.
//
// Branching:
//   - android >= ScopedStorageVersion: granted without prompting.
//   - android below that: query status, prompt if not granted.
//   - ios: granted unconditionally (app-private documents).
//   - anything else: query status, prompt if not granted.
//
// A declined outcome surfaces as core.ErrPermissionDenied.
func (g *Gate) EnsureAccess(ctx context.Context) error {
	switch g.env.Family() {
	case FamilyIOS:
		return nil
	case FamilyAndroid:
		if g.env.Version() >= ScopedStorageVersion {
			return nil
		}
	}

	status, err := g.env.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to query permission status: %w", err)
	}
	if status == StatusGranted {
		return nil
	}

	g.logger.Debug("permission not granted, requesting consent", "family", g.env.Family())

	status, err = g.env.Request(ctx)
	if err != nil {
		return fmt.Errorf("permission request failed: %w", err)
	}
	if status != StatusGranted {
		return core.ErrPermissionDenied
	}
	return nil
}

var _ core.Gate = (*Gate)(nil)

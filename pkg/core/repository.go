package core

import "context"

// Repository defines the contract for storing and retrieving notes.
// Adhering to this interface keeps the core independent of the underlying
// storage mechanism (filesystem, in-memory fake, future backends).
type Repository interface {
	// Save persists a note. It creates if not exists, or overwrites if it
	// does (upsert). There is no concurrency check and no merge.
	Save(ctx context.Context, n Note) error

	// Get retrieves a note by its ID. Returns ErrNotFound if absent.
	Get(ctx context.Context, id string) (Note, error)

	// List returns all notes sorted by Date descending (most recent first).
	// Entries that fail to deserialize are skipped, never fatal.
	List(ctx context.Context) ([]Note, error)

	// Delete removes a note by its ID. Deleting an absent note is a no-op.
	Delete(ctx context.Context, id string) error

	// Export aggregates all notes into a single JSON array artifact and
	// returns the path to the written file.
	Export(ctx context.Context) (string, error)

	// Initialize ensures the underlying storage is ready (e.g. create the
	// vault directory). Idempotent.
	Initialize(ctx context.Context) error
}

// Watchable defines an interface for repositories that can report changes
// to their contents as they happen.
type Watchable interface {
	// Watch emits events for notes matching pattern until ctx is done.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}

// Importer defines an interface for repositories that can ingest a
// previously exported artifact, restoring every note it contains.
type Importer interface {
	// Import upserts all notes from the artifact at path and returns how
	// many were written.
	Import(ctx context.Context, path string) (int, error)
}

// Gate authorizes access to the storage before any repository call.
type Gate interface {
	// EnsureAccess returns nil when access is granted. It may block on an
	// interactive consent prompt. A declined prompt surfaces as
	// ErrPermissionDenied.
	EnsureAccess(ctx context.Context) error
}

package core

import "errors"

// Common errors.
var (
	// ErrPermissionDenied means the permission gate declined filesystem
	// access. Operations abort before touching the vault.
	ErrPermissionDenied = errors.New("storage permission denied")

	// ErrStorageUnavailable means no storage root could be resolved or the
	// vault directory is unusable.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrNotFound means the requested note does not exist in the vault.
	ErrNotFound = errors.New("note not found")

	// ErrInvalidID means the note ID is empty or would escape the vault
	// directory when used as a filename.
	ErrInvalidID = errors.New("invalid note id")
)

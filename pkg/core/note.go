package core

import (
	"time"

	"github.com/google/uuid"
)

// Note is the central entity of the domain.
// It represents one user-authored record identified by an ID.
// The ID doubles as the storage key; the adapter derives the backing
// filename from it, so it must never contain path separators.
type Note struct {
	ID      string
	Title   string
	Content string
	Date    time.Time
	Color   int
}

// NewID returns a fresh unique note ID.
// IDs are UUIDs rather than wall-clock timestamps so that two notes
// created within the same instant cannot collide.
func NewID() string {
	return uuid.NewString()
}

// Package inkwell is the Composition Root for the inkwell application.
//
// It connects the core business logic (Domain Layer) with the
// infrastructure adapters (Persistence Layer) using the Hexagonal
// Architecture pattern.
//
// Philosophy:
//
// Inkwell is a personal note vault. Each note is a single JSON record in a
// per-app directory; the directory contents are the whole database. Every
// operation runs through a permission gate before touching the filesystem,
// which keeps the storage logic honest on platforms where consent is a
// real concern and trivially satisfied everywhere else.
//
// Features:
//
//   - Hexagonal Architecture: core domain is isolated from persistence details.
//   - Atomic writes: records are replaced via temp file + rename.
//   - Permission gated: no filesystem access without a prior successful check.
//   - Corruption tolerant: one broken record never hides the rest.
//   - Export: the whole vault aggregates into a single shareable JSON array.
//   - Watchable: vault changes stream as events for UI refresh.
//
// Usage:
//
//	// Initialize the service with functional options
//	svc, err := inkwell.New("", inkwell.WithLogger(logger))
//
//	// Save a note
//	n, err := svc.SaveNote(ctx, inkwell.Note{Title: "Groceries", Content: "milk"})
package inkwell

package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/inkwell-notes/inkwell/pkg/core"
)

const (
	// NoteExt is the extension of every note record.
	NoteExt = ".json"

	// ExportFileName is the fixed name of the export artifact. It lives in
	// the vault next to the note records and is excluded from List.
	ExportFileName = "notes_export.json"
)

// Repository implements core.Repository on a single vault directory.
// Each note is one <id>.json file; the directory contents are the only
// persistent state.
type Repository struct {
	Path   string
	config Config
	logger *slog.Logger
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	// Path is the vault directory (e.g. <storage root>/Notes).
	Path string

	// MustExist makes Initialize fail instead of creating the directory.
	MustExist bool

	// Logger receives skip warnings and debug traces. Defaults to
	// slog.Default when nil.
	Logger *slog.Logger
}

// NewRepository creates a new filesystem-backed repository. It performs no
// I/O; call Initialize before use.
func NewRepository(config Config) *Repository {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		Path:   config.Path,
		config: config,
		logger: logger,
	}
}

// Initialize ensures the vault directory exists, creating it (including
// missing parents) unless MustExist is set. Idempotent.
func (r *Repository) Initialize(ctx context.Context) error {
	if r.Path == "" {
		return fmt.Errorf("%w: no vault path resolved", core.ErrStorageUnavailable)
	}

	if r.config.MustExist {
		info, err := os.Stat(r.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: vault path does not exist: %s", core.ErrStorageUnavailable, r.Path)
		}
		if err != nil {
			return fmt.Errorf("%w: %v", core.ErrStorageUnavailable, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%w: vault path is not a directory: %s", core.ErrStorageUnavailable, r.Path)
		}
		return nil
	}

	if err := os.MkdirAll(r.Path, 0755); err != nil {
		return fmt.Errorf("%w: failed to create vault directory: %v", core.ErrStorageUnavailable, err)
	}
	return nil
}

// notePath resolves the backing file for an ID.
func (r *Repository) notePath(id string) string {
	return filepath.Join(r.Path, id+NoteExt)
}

// Save persists a note, overwriting unconditionally if the file already
// exists (upsert). The write is atomic: temp file plus rename.
func (r *Repository) Save(ctx context.Context, n core.Note) error {
	data, err := encodeNote(n)
	if err != nil {
		return fmt.Errorf("failed to serialize note %s: %w", n.ID, err)
	}

	if err := writeFileAtomic(r.notePath(n.ID), data, 0644); err != nil {
		return fmt.Errorf("failed to write note %s: %w", n.ID, err)
	}

	r.logger.Debug("note written", "id", n.ID, "path", r.notePath(n.ID))
	return nil
}

// Get retrieves a single note by ID.
func (r *Repository) Get(ctx context.Context, id string) (core.Note, error) {
	data, err := os.ReadFile(r.notePath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return core.Note{}, fmt.Errorf("%w: %s", core.ErrNotFound, id)
		}
		return core.Note{}, fmt.Errorf("failed to read note %s: %w", id, err)
	}

	n, err := decodeNote(data)
	if err != nil {
		return core.Note{}, fmt.Errorf("failed to parse note %s: %w", id, err)
	}
	return n, nil
}

// List enumerates every note record in the vault, most recent first.
//
// Entries that fail to parse are logged and skipped; one corrupt file never
// hides the rest. The export artifact and in-flight temp files are not
// notes and are excluded. An empty vault yields an empty slice, not an
// error.
func (r *Repository) List(ctx context.Context) ([]core.Note, error) {
	entries, err := os.ReadDir(r.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: vault directory missing: %s", core.ErrStorageUnavailable, r.Path)
		}
		return nil, fmt.Errorf("failed to read vault directory: %w", err)
	}

	notes := make([]core.Note, 0, len(entries))
	for _, entry := range entries {
		if !isNoteFile(entry) {
			continue
		}

		id := strings.TrimSuffix(entry.Name(), NoteExt)
		n, err := r.Get(ctx, id)
		if err != nil {
			r.logger.Warn("skipping unreadable note", "file", entry.Name(), "error", err)
			continue
		}
		notes = append(notes, n)
	}

	// Stable: ties on Date keep enumeration order.
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Date.After(notes[j].Date)
	})

	return notes, nil
}

// Delete removes a note. Removing an ID with no backing file is a no-op,
// making Delete idempotent.
func (r *Repository) Delete(ctx context.Context, id string) error {
	err := os.Remove(r.notePath(id))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove note %s: %w", id, err)
	}
	return nil
}

// Export aggregates the current notes, in List order, into a single JSON
// array written to ExportFileName inside the vault. A prior export is
// overwritten. Returns the absolute path of the artifact.
func (r *Repository) Export(ctx context.Context) (string, error) {
	notes, err := r.List(ctx)
	if err != nil {
		return "", err
	}

	data, err := encodeNotes(notes)
	if err != nil {
		return "", fmt.Errorf("failed to serialize export: %w", err)
	}

	path := filepath.Join(r.Path, ExportFileName)
	if err := writeFileAtomic(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}

	r.logger.Debug("export written", "path", abs, "notes", len(notes))
	return abs, nil
}

// Import reads an export artifact (a JSON array of notes) and upserts
// every record into the vault. Returns the number of notes written. The
// artifact must parse as a whole; unlike List there is no partial skip,
// since a corrupt import is a caller mistake rather than vault damage.
func (r *Repository) Import(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read import file: %w", err)
	}

	notes, err := decodeNotes(data)
	if err != nil {
		return 0, fmt.Errorf("failed to parse import file %s: %w", path, err)
	}

	for _, n := range notes {
		if err := r.Save(ctx, n); err != nil {
			return 0, err
		}
	}

	r.logger.Debug("import finished", "path", path, "notes", len(notes))
	return len(notes), nil
}

// isNoteFile reports whether a directory entry is a note record: a regular
// .json file that is neither the export artifact nor a temp file from an
// in-flight atomic write.
func isNoteFile(entry os.DirEntry) bool {
	if entry.IsDir() {
		return false
	}
	name := entry.Name()
	if filepath.Ext(name) != NoteExt {
		return false
	}
	if name == ExportFileName {
		return false
	}
	if strings.HasPrefix(name, TempFilePrefix) {
		return false
	}
	return true
}

var _ core.Repository = (*Repository)(nil)

// errNotNote is a marker used by the watcher when a path does not resolve
// to a note record.
var errNotNote = errors.New("not a note file")

package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Service handles the business logic for notes. Every operation is gated:
// the permission gate runs first and the repository is never touched when
// access is denied.
type Service struct {
	repo   Repository
	gate   Gate
	logger *slog.Logger
	now    func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithServiceLogger sets the logger used by the service.
func WithServiceLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source used to stamp notes on save.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a new Service.
func NewService(repo Repository, gate Gate, opts ...ServiceOption) *Service {
	s := &Service{
		repo:   repo,
		gate:   gate,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SaveNote persists a note (upsert). New notes (empty ID) get a generated
// ID; existing notes keep theirs. Date is stamped to "now" on every save,
// serving as both creation and last-modified time. Returns the note as
// stored.
func (s *Service) SaveNote(ctx context.Context, n Note) (Note, error) {
	if err := s.gate.EnsureAccess(ctx); err != nil {
		return Note{}, err
	}

	if n.ID == "" {
		n.ID = NewID()
	}
	if err := validateID(n.ID); err != nil {
		return Note{}, err
	}

	n.Date = s.now().UTC()

	if err := s.repo.Save(ctx, n); err != nil {
		return Note{}, err
	}

	s.logger.Debug("note saved", "id", n.ID, "title", n.Title)
	return n, nil
}

// GetNote retrieves a single note by ID.
func (s *Service) GetNote(ctx context.Context, id string) (Note, error) {
	if err := s.gate.EnsureAccess(ctx); err != nil {
		return Note{}, err
	}
	if err := validateID(id); err != nil {
		return Note{}, err
	}
	return s.repo.Get(ctx, id)
}

// ListNotes retrieves all notes, most recent first.
func (s *Service) ListNotes(ctx context.Context) ([]Note, error) {
	if err := s.gate.EnsureAccess(ctx); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// DeleteNote removes a note. Deleting an ID that does not exist succeeds.
func (s *Service) DeleteNote(ctx context.Context, id string) error {
	if err := s.gate.EnsureAccess(ctx); err != nil {
		return err
	}
	if err := validateID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Debug("note deleted", "id", id)
	return nil
}

// ExportNotes writes all current notes as a single JSON array artifact and
// returns its path. Handing the artifact to a share mechanism is the
// caller's responsibility.
func (s *Service) ExportNotes(ctx context.Context) (string, error) {
	if err := s.gate.EnsureAccess(ctx); err != nil {
		return "", err
	}
	path, err := s.repo.Export(ctx)
	if err != nil {
		return "", err
	}
	s.logger.Debug("notes exported", "path", path)
	return path, nil
}

// ImportNotes restores notes from an export artifact if the repository
// supports it. Dates and IDs are taken from the artifact verbatim; import
// is a restore, not an edit.
func (s *Service) ImportNotes(ctx context.Context, path string) (int, error) {
	imp, ok := s.repo.(Importer)
	if !ok {
		return 0, fmt.Errorf("repository does not support importing")
	}
	if err := s.gate.EnsureAccess(ctx); err != nil {
		return 0, err
	}
	return imp.Import(ctx, path)
}

// Watch observes changes in the repository if supported.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, fmt.Errorf("repository does not support watching")
	}
	if err := s.gate.EnsureAccess(ctx); err != nil {
		return nil, err
	}
	return w.Watch(ctx, pattern)
}

// validateID rejects IDs that are empty or would resolve outside the vault
// directory when used as a filename stem.
func validateID(id string) error {
	if id == "" {
		return ErrInvalidID
	}
	if strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

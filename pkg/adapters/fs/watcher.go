package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/inkwell-notes/inkwell/pkg/core"
)

// debounceInterval coalesces rapid event bursts for the same note, such as
// the create/chmod/rename sequence produced by an atomic write.
const debounceInterval = 50 * time.Millisecond

// Watch emits an event for every note created, modified or deleted in the
// vault until ctx is done. pattern filters by note ID using glob syntax
// ("*" or "" match everything). The export artifact and temp files are
// invisible to watchers.
func (r *Repository) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern != "" {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid watch pattern: %s", pattern)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(r.Path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch vault: %w", err)
	}

	events := make(chan core.Event, 16)
	deb := newDebouncer(debounceInterval)

	go r.watchLoop(ctx, watcher, pattern, deb, events)

	return events, nil
}

func (r *Repository) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, pattern string, deb *debouncer, events chan<- core.Event) {
	defer close(events)
	defer deb.stop()
	defer watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}

			id, err := r.resolveID(ev.Name)
			if err != nil {
				continue
			}
			if pattern != "" {
				if match, _ := doublestar.Match(pattern, id); !match {
					continue
				}
			}

			eType := mapEventType(ev)
			if eType == "" {
				continue
			}

			r.logger.Debug("vault event", "id", id, "type", eType)

			deb.add(core.Event{
				Type:      eType,
				ID:        id,
				Timestamp: time.Now().Unix(),
			}, func(e core.Event) {
				// The channel may close while a timer is in flight.
				defer func() { _ = recover() }()
				select {
				case events <- e:
				case <-ctx.Done():
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			r.logger.Error("watcher error", "error", err)
		}
	}
}

// resolveID maps a filesystem path to a note ID, or errNotNote for paths
// that are not note records (export artifact, temp files, foreign files).
func (r *Repository) resolveID(path string) (string, error) {
	name := filepath.Base(path)
	if filepath.Ext(name) != NoteExt ||
		name == ExportFileName ||
		strings.HasPrefix(name, TempFilePrefix) {
		return "", errNotNote
	}
	return strings.TrimSuffix(name, NoteExt), nil
}

func mapEventType(ev fsnotify.Event) core.EventType {
	switch {
	case ev.Has(fsnotify.Create):
		return core.EventCreate
	case ev.Has(fsnotify.Write):
		return core.EventModify
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return ""
	}
}

// debouncer delays event delivery per note ID, so only the last event of a
// rapid burst is emitted.
type debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	timers   map[string]*time.Timer
	stopped  bool
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{
		interval: interval,
		timers:   make(map[string]*time.Timer),
	}
}

// add schedules fire(e), replacing any pending delivery for the same ID.
func (d *debouncer) add(e core.Event, fire func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if t, ok := d.timers[e.ID]; ok {
		t.Stop()
	}
	d.timers[e.ID] = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		delete(d.timers, e.ID)
		stopped := d.stopped
		d.mu.Unlock()
		if !stopped {
			fire(e)
		}
	})
}

// stop cancels all pending deliveries and rejects new ones.
func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	for id, t := range d.timers {
		t.Stop()
		delete(d.timers, id)
	}
}

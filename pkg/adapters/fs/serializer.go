package fs

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/inkwell-notes/inkwell/pkg/core"
)

// notePayload is the on-disk shape of a note. Pointer fields let decoding
// distinguish an absent key from a zero value: every key is required, and a
// record missing any of them is corrupt.
type notePayload struct {
	ID      *string `json:"id"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Date    *string `json:"date"`
	Color   *int    `json:"color"`
}

func toPayload(n core.Note) notePayload {
	date := n.Date.UTC().Format(time.RFC3339Nano)
	return notePayload{
		ID:      &n.ID,
		Title:   &n.Title,
		Content: &n.Content,
		Date:    &date,
		Color:   &n.Color,
	}
}

func (p notePayload) toNote() (core.Note, error) {
	if p.ID == nil || p.Title == nil || p.Content == nil || p.Date == nil || p.Color == nil {
		return core.Note{}, fmt.Errorf("record is missing required fields")
	}

	date, err := time.Parse(time.RFC3339Nano, *p.Date)
	if err != nil {
		return core.Note{}, fmt.Errorf("invalid date %q: %w", *p.Date, err)
	}

	return core.Note{
		ID:      *p.ID,
		Title:   *p.Title,
		Content: *p.Content,
		Date:    date,
		Color:   *p.Color,
	}, nil
}

// encodeNote serializes a note to its JSON record: an object with exactly
// the keys id, title, content, date (RFC 3339) and color.
func encodeNote(n core.Note) ([]byte, error) {
	return json.MarshalIndent(toPayload(n), "", "  ")
}

// decodeNote deserializes a JSON record back into a note.
func decodeNote(data []byte) (core.Note, error) {
	var p notePayload
	if err := json.Unmarshal(data, &p); err != nil {
		return core.Note{}, fmt.Errorf("invalid json: %w", err)
	}
	return p.toNote()
}

// encodeNotes serializes a sequence of notes as a single JSON array,
// preserving order. An empty sequence encodes as an empty array, not null.
func encodeNotes(notes []core.Note) ([]byte, error) {
	payload := make([]notePayload, 0, len(notes))
	for _, n := range notes {
		payload = append(payload, toPayload(n))
	}
	return json.MarshalIndent(payload, "", "  ")
}

// decodeNotes deserializes an exported JSON array of notes.
func decodeNotes(data []byte) ([]core.Note, error) {
	var payload []notePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	notes := make([]core.Note, 0, len(payload))
	for i, p := range payload {
		n, err := p.toNote()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// Package notes owns the in-memory note collection: create, edit, delete,
// and a derived read view combining free-text filtering and date sorting.
//
// The collection lives for the lifetime of the process only and is not
// partitioned per user; that is a known limitation, not an accident.
package notes

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/google/uuid"
)

// Note is a single user-authored text item. Category and Text are always
// non-empty (trimmed) for any note that exists; Title is optional.
// DateAdded is set once at creation; UpdatedAt stays zero until first edit.
type Note struct {
	ID        string
	Title     string
	Category  string
	Text      string
	DateAdded time.Time
	UpdatedAt time.Time
}

// SortOrder selects the DateAdded ordering of the derived view.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

var (
	ErrTextRequired     = fmt.Errorf("%w: notes text is required", common.ErrValidation)
	ErrCategoryRequired = fmt.Errorf("%w: category is required", common.ErrValidation)
)

// Manager owns the note collection. Mutations are serialized behind a
// mutex, so interleaved calls resolve in arrival order: a delete that lands
// before an edit makes the edit report common.ErrNotFound and leave the
// collection untouched.
type Manager struct {
	mu    sync.Mutex
	notes []Note

	now func() time.Time
}

// NewManager returns an empty Manager.
func NewManager() *Manager {
	return &Manager{now: time.Now}
}

// Add validates and stores a new note, returning a copy of the created
// record. Title is kept only when non-empty after trimming. The new note is
// prepended, which is what keeps the view stable when DateAdded ties.
func (m *Manager) Add(title, category, text string) (*Note, error) {
	title, category, text, err := normalize(title, category, text)
	if err != nil {
		return nil, err
	}

	note := Note{
		ID:        uuid.NewString(),
		Title:     title,
		Category:  category,
		Text:      text,
		DateAdded: m.now(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.notes = append([]Note{note}, m.notes...)

	return &note, nil
}

// Update validates and replaces the text, title, and category of the note
// with the given id, stamping UpdatedAt. ID and DateAdded are immutable.
// It fails with common.ErrNotFound when the id does not exist; the
// collection is never altered on any error.
func (m *Manager) Update(id, title, category, text string) (*Note, error) {
	title, category, text, err := normalize(title, category, text)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.notes {
		if m.notes[i].ID != id {
			continue
		}
		m.notes[i].Title = title
		m.notes[i].Category = category
		m.notes[i].Text = text
		m.notes[i].UpdatedAt = m.now()

		note := m.notes[i]
		return &note, nil
	}

	return nil, fmt.Errorf("note %s: %w", id, common.ErrNotFound)
}

// Remove deletes the note with the given id. It is idempotent: removing an
// unknown id is a no-op.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.notes[:0]
	for _, note := range m.notes {
		if note.ID != id {
			kept = append(kept, note)
		}
	}
	m.notes = kept
}

// View returns the derived projection of the collection: notes whose
// case-folded "text title category" concatenation contains the trimmed,
// case-folded query as a substring, sorted by DateAdded in the given order.
// Ties are broken by collection order (stable sort over the prepend order).
//
// The result is recomputed from scratch on every call and is safe for the
// caller to retain.
func (m *Manager) View(query string, order SortOrder) []Note {
	m.mu.Lock()
	result := make([]Note, len(m.notes))
	copy(result, m.notes)
	m.mu.Unlock()

	query = strings.ToLower(strings.TrimSpace(query))
	if query != "" {
		filtered := result[:0]
		for _, note := range result {
			haystack := strings.ToLower(note.Text + " " + note.Title + " " + note.Category)
			if strings.Contains(haystack, query) {
				filtered = append(filtered, note)
			}
		}
		result = filtered
	}

	sort.SliceStable(result, func(i, j int) bool {
		if order == SortAsc {
			return result[i].DateAdded.Before(result[j].DateAdded)
		}
		return result[i].DateAdded.After(result[j].DateAdded)
	})

	return result
}

// normalize trims the user-supplied fields and enforces that text and
// category are non-empty.
func normalize(title, category, text string) (string, string, string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", "", "", ErrTextRequired
	}

	category = strings.TrimSpace(category)
	if category == "" {
		return "", "", "", ErrCategoryRequired
	}

	return strings.TrimSpace(title), category, text, nil
}

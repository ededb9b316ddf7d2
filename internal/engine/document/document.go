package document

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/editkit/internal/engine/position"
	"github.com/dshills/editkit/internal/engine/textstore"
)

// Errors returned by document operations.
var (
	// ErrInvalidRange indicates a range delete with start >= end or an
	// end beyond the document length.
	ErrInvalidRange = errors.New("invalid range")
)

// OpResult reports what an edit-engine operation did.
type OpResult struct {
	CursorMoved bool
	TextChanged bool
}

// registration pairs a listener with its removal handle.
type registration struct {
	id int
	l  Listener
}

// Document owns a text store and the cursor over it. All content
// mutation goes through Document methods, which keep the store and the
// cursor coordinates mutually consistent and notify listeners.
type Document struct {
	id       uuid.UUID
	store    *textstore.Store
	cursor   position.Position
	modified bool

	listeners []registration
	nextID    int
}

// New creates an empty document.
func New(opts ...Option) *Document {
	cfg := docConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Document{
		id:    uuid.New(),
		store: textstore.New(cfg.storeOpts...),
	}
}

// NewFromString creates a document with initial content. The cursor
// starts at the buffer start and the document counts as unmodified.
func NewFromString(text string, opts ...Option) *Document {
	cfg := docConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Document{
		id:    uuid.New(),
		store: textstore.NewFromString(text, cfg.storeOpts...),
	}
}

// ID returns the document's unique identity.
func (d *Document) ID() uuid.UUID {
	return d.id
}

// Text materializes the full document content.
func (d *Document) Text() string {
	return d.store.String()
}

// Len returns the document length in runes.
func (d *Document) Len() int {
	return d.store.Len()
}

// Cursor returns the current cursor position.
func (d *Document) Cursor() position.Position {
	return d.cursor
}

// Modified reports whether content changed since the last reset.
func (d *Document) Modified() bool {
	return d.modified
}

// SetUnmodified clears the modified flag, typically after a save by the
// owning application.
func (d *Document) SetUnmodified() {
	d.modified = false
}

// AddListener registers a change listener and returns a handle for
// removal. Listeners are owned by the document and are invoked
// synchronously, in registration order.
func (d *Document) AddListener(l Listener) int {
	d.nextID++
	d.listeners = append(d.listeners, registration{id: d.nextID, l: l})
	return d.nextID
}

// RemoveListener unregisters the listener with the given handle.
func (d *Document) RemoveListener(id int) {
	for i, reg := range d.listeners {
		if reg.id == id {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}

// Insert writes text at the given rune position. On success the cursor
// lands just past the inserted run with freshly derived coordinates,
// the document is marked modified, and an insertion notification is
// emitted.
func (d *Document) Insert(pos int, text string) (OpResult, error) {
	if text == "" {
		return OpResult{}, nil
	}

	runes := []rune(text)
	if err := d.store.Insert(pos, runes); err != nil {
		return OpResult{}, fmt.Errorf("insert at %d: %w", pos, err)
	}

	before := d.cursor
	d.cursor = position.FromOffset(d.store, pos+len(runes))
	d.modified = true

	d.notify(Change{
		Kind: ChangeInsert,
		Pos:  position.FromOffset(d.store, pos),
		Text: text,
	})

	return OpResult{CursorMoved: d.cursor != before, TextChanged: true}, nil
}

// InsertRune writes a single rune at the given position.
func (d *Document) InsertRune(pos int, r rune) (OpResult, error) {
	return d.Insert(pos, string(r))
}

// DeleteRune removes the rune at the given position. On success the
// cursor lands at the deletion point and a deletion notification
// carrying the removed rune is emitted.
func (d *Document) DeleteRune(pos int) (OpResult, error) {
	r, err := d.store.Delete(pos)
	if err != nil {
		return OpResult{}, fmt.Errorf("delete at %d: %w", pos, err)
	}

	before := d.cursor
	d.cursor = position.FromOffset(d.store, pos)
	d.modified = true

	d.notify(Change{
		Kind: ChangeDelete,
		Pos:  d.cursor,
		Text: string(r),
	})

	return OpResult{CursorMoved: d.cursor != before, TextChanged: true}, nil
}

// DeleteRange removes the runes in [start, end). The range must satisfy
// start < end <= Len, else ErrInvalidRange is returned before any
// mutation. Runes are removed in strictly descending position order so
// earlier indices are never invalidated; a single aggregated deletion
// notification covers the whole run.
func (d *Document) DeleteRange(start, end int) (OpResult, error) {
	if start < 0 || start >= end || end > d.store.Len() {
		return OpResult{}, fmt.Errorf("delete range [%d, %d): %w", start, end, ErrInvalidRange)
	}

	removed := string(d.store.Slice(start, end))
	for i := end - 1; i >= start; i-- {
		if _, err := d.store.Delete(i); err != nil {
			return OpResult{}, fmt.Errorf("delete range [%d, %d) at %d: %w", start, end, i, err)
		}
	}

	before := d.cursor
	d.cursor = position.FromOffset(d.store, start)
	d.modified = true

	d.notify(Change{
		Kind: ChangeDelete,
		Pos:  d.cursor,
		Text: removed,
	})

	return OpResult{CursorMoved: d.cursor != before, TextChanged: true}, nil
}

// MoveCursor applies a movement intent. Content never changes; a
// cursor notification is emitted only when the position does.
func (d *Document) MoveCursor(m position.Movement) OpResult {
	next, moved := position.Move(d.store, d.cursor, m)
	if !moved {
		return OpResult{}
	}

	d.cursor = next
	d.notify(Change{Kind: ChangeCursor, Pos: next})
	return OpResult{CursorMoved: true}
}

// SetCursor places the cursor at the given rune offset, recomputing
// line and column. Out-of-range offsets clamp. Used by the history
// engine to restore positions around undo/redo.
func (d *Document) SetCursor(offset int) position.Position {
	next := position.FromOffset(d.store, offset)
	if next != d.cursor {
		d.cursor = next
		d.notify(Change{Kind: ChangeCursor, Pos: next})
	}
	return d.cursor
}

// notify delivers a change to every registered listener, in order,
// within the mutating call's stack frame.
func (d *Document) notify(c Change) {
	for _, reg := range d.listeners {
		reg.l.OnChange(c)
	}
}

package document

import (
	"fmt"

	"github.com/dshills/editkit/internal/engine/position"
)

// ChangeKind categorizes a change notification.
type ChangeKind uint8

const (
	ChangeInsert ChangeKind = iota // A run of text was inserted
	ChangeDelete                   // A run of text was deleted
	ChangeCursor                   // The cursor moved; content untouched
)

// String returns the change kind name.
func (k ChangeKind) String() string {
	switch k {
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	case ChangeCursor:
		return "cursor"
	default:
		return "unknown"
	}
}

// Change describes one atomic document mutation. For deletions the
// removed text is carried in the notification so listeners need not
// re-query the store. Cursor changes carry no text. Changes are
// transient values: constructed at the moment of mutation, delivered
// synchronously, not retained by the document.
type Change struct {
	Kind ChangeKind
	Pos  position.Position // Where the change begins (cursor: new position)
	Text string            // Inserted or deleted text; empty for cursor moves
}

// String returns a human-readable representation of the change.
func (c Change) String() string {
	if c.Kind == ChangeCursor {
		return fmt.Sprintf("cursor(%s)", c.Pos)
	}
	return fmt.Sprintf("%s(%s, %q)", c.Kind, c.Pos, c.Text)
}

// IsContent returns true if the change altered document text.
func (c Change) IsContent() bool {
	return c.Kind == ChangeInsert || c.Kind == ChangeDelete
}

// Invert returns the change that would undo this one. Cursor changes
// invert to themselves.
func (c Change) Invert() Change {
	switch c.Kind {
	case ChangeInsert:
		return Change{Kind: ChangeDelete, Pos: c.Pos, Text: c.Text}
	case ChangeDelete:
		return Change{Kind: ChangeInsert, Pos: c.Pos, Text: c.Text}
	default:
		return c
	}
}

// Listener receives change notifications from a document.
// Implementations must not mutate the notifying document reentrantly.
type Listener interface {
	OnChange(c Change)
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(c Change)

// OnChange calls the wrapped function.
func (f ListenerFunc) OnChange(c Change) {
	f(c)
}

package history

import (
	"time"

	"github.com/dshills/editkit/internal/engine/position"
)

// Entry is one user-visible undo/redo step: the edits performed by a
// single command, plus the cursor positions bracketing it. Before is
// where the cursor returns on undo, After on redo.
type Entry struct {
	Kind      CommandKind
	Edits     []Edit
	Before    position.Position
	After     position.Position
	Timestamp time.Time
}

// merge attempts to extend this entry with the edits of next, which must
// be the entry for the command immediately following this one. The
// heuristics are deliberately narrow: identical command kind, exactly
// one edit on each side, word text on both, and strict positional
// contiguity. It reports whether the merge happened; on success next is
// absorbed and must not be pushed.
func (e *Entry) merge(next *Entry) bool {
	if e.Kind != next.Kind {
		return false
	}
	if len(e.Edits) != 1 || len(next.Edits) != 1 {
		return false
	}

	prev := &e.Edits[0]
	ne := next.Edits[0]
	if prev.Kind != ne.Kind || !wordText(prev.Text) || !wordText(ne.Text) {
		return false
	}

	switch prev.Kind {
	case EditInsert:
		// Contiguous forward typing: the new run starts where the
		// previous one ended.
		if ne.Pos != prev.End() {
			return false
		}
		prev.Text += ne.Text
	case EditDelete:
		// Contiguous backward deletion: the new run ends where the
		// previous one started.
		if ne.End() != prev.Pos {
			return false
		}
		prev.Pos = ne.Pos
		prev.Text = ne.Text + prev.Text
	default:
		return false
	}

	e.After = next.After
	return true
}

package history

import (
	"fmt"
	"time"

	"github.com/dshills/editkit/internal/engine/document"
	"github.com/dshills/editkit/internal/engine/position"
)

// Recorder assembles document changes into history entries. It is a
// state machine with two states, idle and recording: Begin enters
// recording, End leaves it. Commands never nest; a Begin while already
// recording discards the buffered edits and starts over.
//
// The recorder registers itself as a change listener on the document it
// is created for, so every mutation made between Begin and End is
// captured in order. While the recorder is replaying an undo or redo,
// recording is suspended and the replay's own changes are ignored.
type Recorder struct {
	doc  *document.Document
	hist *History

	recording bool
	suspended bool
	kind      CommandKind
	before    position.Position
	edits     []Edit
}

// NewRecorder creates a recorder bound to doc and registers it as a
// change listener.
func NewRecorder(doc *document.Document, hist *History) *Recorder {
	r := &Recorder{doc: doc, hist: hist}
	doc.AddListener(r)
	return r
}

// History returns the underlying stacks, for inspection.
func (r *Recorder) History() *History { return r.hist }

// Begin starts recording a command of the given kind, snapshotting the
// cursor as the entry's before-position. Edits buffered for any
// previous command are discarded.
func (r *Recorder) Begin(kind CommandKind) {
	r.recording = true
	r.kind = kind
	r.before = r.doc.Cursor()
	r.edits = nil
}

// End finishes the current command, snapshotting the cursor as the
// entry's after-position. A failed command (ok false) or one that
// produced no edits leaves no history. Outside a command End is a no-op.
func (r *Recorder) End(ok bool) {
	if !r.recording {
		return
	}
	r.recording = false

	if !ok || len(r.edits) == 0 {
		r.edits = nil
		return
	}

	e := &Entry{
		Kind:      r.kind,
		Edits:     r.edits,
		Before:    r.before,
		After:     r.doc.Cursor(),
		Timestamp: time.Now(),
	}
	r.edits = nil
	r.hist.Push(e)
}

// OnChange implements document.Listener. Content changes are buffered
// while recording; cursor moves are never part of an entry.
func (r *Recorder) OnChange(c document.Change) {
	if !r.recording || r.suspended {
		return
	}

	switch c.Kind {
	case document.ChangeInsert:
		r.edits = append(r.edits, Edit{Kind: EditInsert, Pos: c.Pos.Offset, Text: c.Text})
	case document.ChangeDelete:
		r.edits = append(r.edits, Edit{Kind: EditDelete, Pos: c.Pos.Offset, Text: c.Text})
	}
}

// Undo reverses the most recent entry. It reports false with a nil
// error when there is nothing to undo. The entry's edits are replayed
// inverted in reverse order and the cursor returns to the entry's
// before-position; on success the entry moves to the redo stack.
//
// Replay of a multi-edit entry is not transactional: a mid-sequence
// failure leaves completed sub-steps applied, restores the entry to the
// undo stack, and returns the error.
func (r *Recorder) Undo() (bool, error) {
	e := r.hist.popUndo()
	if e == nil {
		return false, nil
	}

	r.suspended = true
	defer func() { r.suspended = false }()

	for i := len(e.Edits) - 1; i >= 0; i-- {
		if err := r.apply(e.Edits[i].Invert()); err != nil {
			r.hist.restoreUndo(e)
			return false, fmt.Errorf("undo %s: %w", e.Kind, err)
		}
	}
	r.doc.SetCursor(e.Before.Offset)

	r.hist.moveToRedo(e)
	return true, nil
}

// Redo reapplies the most recently undone entry. It reports false with
// a nil error when there is nothing to redo. Edits replay forward in
// original order and the cursor moves to the entry's after-position; on
// success the entry returns to the undo stack. Failure semantics match
// Undo, with the entry restored to the redo stack.
func (r *Recorder) Redo() (bool, error) {
	e := r.hist.popRedo()
	if e == nil {
		return false, nil
	}

	r.suspended = true
	defer func() { r.suspended = false }()

	for _, ed := range e.Edits {
		if err := r.apply(ed); err != nil {
			r.hist.restoreRedo(e)
			return false, fmt.Errorf("redo %s: %w", e.Kind, err)
		}
	}
	r.doc.SetCursor(e.After.Offset)

	r.hist.moveToUndo(e)
	return true, nil
}

// apply executes one edit against the document.
func (r *Recorder) apply(e Edit) error {
	switch e.Kind {
	case EditInsert:
		_, err := r.doc.Insert(e.Pos, e.Text)
		return err
	case EditDelete:
		_, err := r.doc.DeleteRange(e.Pos, e.End())
		return err
	default:
		return fmt.Errorf("unknown edit kind %d", e.Kind)
	}
}

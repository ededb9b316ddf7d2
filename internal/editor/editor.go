// Package editor coordinates a document with its undo history behind a
// command-shaped surface. Each mutating method runs as one recorded
// command, so a dispatch layer can bind keys directly to methods and get
// sensible undo granularity for free.
package editor

import (
	"github.com/dshills/editkit/internal/config"
	"github.com/dshills/editkit/internal/engine/document"
	"github.com/dshills/editkit/internal/engine/history"
	"github.com/dshills/editkit/internal/engine/position"
	"github.com/dshills/editkit/internal/logging"
)

// Editor owns one document, its change recorder, and undo history.
type Editor struct {
	log *logging.Logger
	doc *document.Document
	rec *history.Recorder
}

// New creates an editor with an empty document.
func New(cfg config.Config, log *logging.Logger) *Editor {
	return NewFromString(cfg, log, "")
}

// NewFromString creates an editor whose document holds the given text.
func NewFromString(cfg config.Config, log *logging.Logger, text string) *Editor {
	if log == nil {
		log = logging.Null
	}
	doc := document.NewFromString(text,
		document.WithStoreCapacity(cfg.Store.InitialCapacity))
	hist := history.NewHistory(cfg.History.MaxEntries)
	hist.SetMergeEnabled(cfg.History.MergeEnabled)
	rec := history.NewRecorder(doc, hist)

	return &Editor{
		log: log.WithComponent("editor").WithField("doc", doc.ID()),
		doc: doc,
		rec: rec,
	}
}

// Document returns the underlying document for read access.
func (e *Editor) Document() *document.Document { return e.doc }

// Text returns the document content.
func (e *Editor) Text() string { return e.doc.Text() }

// Cursor returns the current cursor position.
func (e *Editor) Cursor() position.Position { return e.doc.Cursor() }

// Modified reports whether the document has unsaved changes.
func (e *Editor) Modified() bool { return e.doc.Modified() }

// AddListener registers an external change observer.
func (e *Editor) AddListener(l document.Listener) int {
	return e.doc.AddListener(l)
}

// RemoveListener unregisters an observer by its handle.
func (e *Editor) RemoveListener(id int) {
	e.doc.RemoveListener(id)
}

// InsertAtCursor inserts a single rune at the cursor as a self-insert
// command. Sequential calls typing one word coalesce into one undo step.
func (e *Editor) InsertAtCursor(r rune) error {
	return e.command(history.CommandSelfInsert, func() error {
		_, err := e.doc.InsertRune(e.doc.Cursor().Offset, r)
		return err
	})
}

// InsertString inserts text at the cursor as one command.
func (e *Editor) InsertString(text string) error {
	return e.command(history.CommandInsertText, func() error {
		_, err := e.doc.Insert(e.doc.Cursor().Offset, text)
		return err
	})
}

// Paste inserts text at the cursor as a paste command, which never
// coalesces with neighboring commands.
func (e *Editor) Paste(text string) error {
	return e.command(history.CommandPaste, func() error {
		_, err := e.doc.Insert(e.doc.Cursor().Offset, text)
		return err
	})
}

// DeleteBackward removes the rune before the cursor. At the start of
// the document it is a no-op.
func (e *Editor) DeleteBackward() error {
	pos := e.doc.Cursor().Offset - 1
	if pos < 0 {
		return nil
	}
	return e.command(history.CommandDeleteBackward, func() error {
		_, err := e.doc.DeleteRune(pos)
		return err
	})
}

// DeleteForward removes the rune at the cursor. At the end of the
// document it is a no-op.
func (e *Editor) DeleteForward() error {
	pos := e.doc.Cursor().Offset
	if pos >= e.doc.Len() {
		return nil
	}
	return e.command(history.CommandDeleteForward, func() error {
		_, err := e.doc.DeleteRune(pos)
		return err
	})
}

// DeleteRange removes the runes in [start, end) as one command.
func (e *Editor) DeleteRange(start, end int) error {
	return e.command(history.CommandDeleteRange, func() error {
		_, err := e.doc.DeleteRange(start, end)
		return err
	})
}

// Move moves the cursor and reports whether it changed position.
// Movement is never recorded in history.
func (e *Editor) Move(m position.Movement) bool {
	res := e.doc.MoveCursor(m)
	return res.CursorMoved
}

// Undo reverses the most recent command. It reports false with a nil
// error when there is nothing to undo.
func (e *Editor) Undo() (bool, error) {
	ok, err := e.rec.Undo()
	e.log.Debug("undo: ok=%v err=%v", ok, err)
	return ok, err
}

// Redo reapplies the most recently undone command. It reports false
// with a nil error when there is nothing to redo.
func (e *Editor) Redo() (bool, error) {
	ok, err := e.rec.Redo()
	e.log.Debug("redo: ok=%v err=%v", ok, err)
	return ok, err
}

// CanUndo reports whether an undo step is available.
func (e *Editor) CanUndo() bool { return e.rec.History().CanUndo() }

// CanRedo reports whether a redo step is available.
func (e *Editor) CanRedo() bool { return e.rec.History().CanRedo() }

// command brackets fn with history recording under the given kind.
func (e *Editor) command(kind history.CommandKind, fn func() error) error {
	e.rec.Begin(kind)
	err := fn()
	e.rec.End(err == nil)
	if err != nil {
		e.log.Debug("command %s failed: %v", kind, err)
	}
	return err
}

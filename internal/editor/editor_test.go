package editor

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dshills/editkit/internal/config"
	"github.com/dshills/editkit/internal/engine/document"
	"github.com/dshills/editkit/internal/engine/position"
	"github.com/dshills/editkit/internal/logging"
)

func newTestEditor(text string) *Editor {
	return NewFromString(config.Default(), nil, text)
}

func typeString(t *testing.T, e *Editor, s string) {
	t.Helper()
	for _, r := range s {
		if err := e.InsertAtCursor(r); err != nil {
			t.Fatalf("type %q: %v", r, err)
		}
	}
}

func TestTypeAndUndo(t *testing.T) {
	e := newTestEditor("")
	typeString(t, e, "hello")

	if e.Text() != "hello" {
		t.Fatalf("text = %q", e.Text())
	}
	if !e.Modified() {
		t.Error("document should be modified")
	}

	ok, err := e.Undo()
	if err != nil || !ok {
		t.Fatalf("undo = (%v, %v)", ok, err)
	}
	if e.Text() != "" {
		t.Errorf("text after undo = %q", e.Text())
	}
	if e.Cursor().Offset != 0 {
		t.Errorf("cursor after undo = %d", e.Cursor().Offset)
	}
}

func TestDeleteBackwardAtStart(t *testing.T) {
	e := newTestEditor("abc")
	e.Move(position.MoveBufferStart)

	if err := e.DeleteBackward(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Text() != "abc" {
		t.Errorf("text = %q, want unchanged", e.Text())
	}
	if e.CanUndo() {
		t.Error("boundary no-op should not be recorded")
	}
}

func TestDeleteForward(t *testing.T) {
	e := newTestEditor("Hello World")
	e.Move(position.MoveBufferStart)
	for i := 0; i < 5; i++ {
		e.Move(position.MoveForward)
	}

	if err := e.DeleteForward(); err != nil {
		t.Fatalf("delete forward: %v", err)
	}
	if e.Text() != "HelloWorld" {
		t.Errorf("text = %q, want %q", e.Text(), "HelloWorld")
	}
	if e.Cursor().Offset != 5 {
		t.Errorf("cursor = %d, want 5", e.Cursor().Offset)
	}
}

func TestDeleteForwardAtEnd(t *testing.T) {
	e := newTestEditor("abc")
	e.Move(position.MoveBufferEnd)

	if err := e.DeleteForward(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Text() != "abc" {
		t.Errorf("text = %q, want unchanged", e.Text())
	}
}

func TestDeleteRangeInvalid(t *testing.T) {
	e := newTestEditor("abc")

	err := e.DeleteRange(2, 2)
	if !errors.Is(err, document.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
	if e.CanUndo() {
		t.Error("failed command should not be recorded")
	}
}

func TestPasteDoesNotCoalesce(t *testing.T) {
	e := newTestEditor("")

	if err := e.Paste("ab"); err != nil {
		t.Fatalf("paste: %v", err)
	}
	if err := e.Paste("cd"); err != nil {
		t.Fatalf("paste: %v", err)
	}
	if e.Text() != "abcd" {
		t.Fatalf("text = %q", e.Text())
	}

	// Each paste undoes separately.
	if ok, _ := e.Undo(); !ok {
		t.Fatal("undo failed")
	}
	if e.Text() != "ab" {
		t.Errorf("text after undo = %q, want %q", e.Text(), "ab")
	}
}

func TestInsertDeleteRangeRoundTrip(t *testing.T) {
	e := newTestEditor("")

	if err := e.InsertString("Hello"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := e.DeleteRange(0, 5); err != nil {
		t.Fatalf("delete range: %v", err)
	}

	if e.Text() != "" {
		t.Errorf("text = %q, want empty", e.Text())
	}
	if e.Cursor().Offset != 0 {
		t.Errorf("cursor = %d, want 0", e.Cursor().Offset)
	}
}

func TestUndoRedoSequence(t *testing.T) {
	e := newTestEditor("")
	typeString(t, e, "one")
	e.Move(position.MoveBufferStart)
	typeString(t, e, "two")

	if ok, _ := e.Undo(); !ok {
		t.Fatal("undo failed")
	}
	if ok, _ := e.Undo(); !ok {
		t.Fatal("undo failed")
	}
	if e.Text() != "" {
		t.Fatalf("text = %q, want empty", e.Text())
	}

	if ok, _ := e.Redo(); !ok {
		t.Fatal("redo failed")
	}
	if ok, _ := e.Redo(); !ok {
		t.Fatal("redo failed")
	}
	if e.Text() != "twoone" {
		t.Errorf("text = %q, want %q", e.Text(), "twoone")
	}
	if e.CanRedo() {
		t.Error("redo stack should be exhausted")
	}
}

func TestUndoEmpty(t *testing.T) {
	e := newTestEditor("")
	ok, err := e.Undo()
	if ok || err != nil {
		t.Errorf("undo = (%v, %v), want (false, nil)", ok, err)
	}
}

func TestMergeDisabledFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.History.MergeEnabled = false
	e := NewFromString(cfg, nil, "")

	typeString(t, e, "hi")

	if ok, _ := e.Undo(); !ok {
		t.Fatal("undo failed")
	}
	// One entry per keystroke, so one undo removes one rune.
	if e.Text() != "h" {
		t.Errorf("text after undo = %q, want %q", e.Text(), "h")
	}
}

func TestLogCarriesDocumentID(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Config{Level: logging.LevelDebug, Output: &buf})
	e := NewFromString(config.Default(), log, "")

	if _, err := e.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}

	if !strings.Contains(buf.String(), e.Document().ID().String()) {
		t.Errorf("log output missing document id: %q", buf.String())
	}
}

func TestExternalListener(t *testing.T) {
	e := newTestEditor("")

	var changes []document.Change
	id := e.AddListener(document.ListenerFunc(func(c document.Change) {
		changes = append(changes, c)
	}))

	if err := e.InsertString("hi"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if len(changes) != 1 || changes[0].Kind != document.ChangeInsert {
		t.Fatalf("unexpected changes: %v", changes)
	}

	e.RemoveListener(id)
	if err := e.InsertString("!"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if len(changes) != 1 {
		t.Error("removed listener still notified")
	}
}

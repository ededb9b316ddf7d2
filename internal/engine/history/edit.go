package history

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// EditKind identifies the direction of a recorded edit.
type EditKind uint8

const (
	EditInsert EditKind = iota
	EditDelete
)

// String returns a human-readable name for the edit kind.
func (k EditKind) String() string {
	switch k {
	case EditInsert:
		return "insert"
	case EditDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Edit is a single undoable change: text inserted at or deleted from a
// rune offset. It captures everything needed to replay or invert the
// change against a document.
type Edit struct {
	Kind EditKind
	Pos  int
	Text string
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	return fmt.Sprintf("%s %q at %d", e.Kind, e.Text, e.Pos)
}

// End returns the rune offset just past the edit's text run.
func (e Edit) End() int {
	return e.Pos + utf8.RuneCountInString(e.Text)
}

// Invert returns the edit that undoes this one: an insertion is undone
// by deleting the same range, a deletion by re-inserting the text.
func (e Edit) Invert() Edit {
	switch e.Kind {
	case EditInsert:
		return Edit{Kind: EditDelete, Pos: e.Pos, Text: e.Text}
	case EditDelete:
		return Edit{Kind: EditInsert, Pos: e.Pos, Text: e.Text}
	default:
		return e
	}
}

// wordText reports whether s is non-empty and consists entirely of
// letters, digits, and underscores. Only word-text edits are eligible
// for coalescing.
func wordText(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

package position

import (
	"fmt"

	"github.com/dshills/editkit/internal/engine/textstore"
)

// Position is a location in a text store.
// Offset is the rune index; Line and Column are the 0-indexed derived
// coordinates. Positions are value types, copied when handed to callers.
type Position struct {
	Offset int
	Line   int
	Column int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("%d(%d:%d)", p.Offset, p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other,
// ordered by offset.
func (p Position) Compare(other Position) int {
	if p.Offset < other.Offset {
		return -1
	}
	if p.Offset > other.Offset {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// IsZero returns true if this is the buffer-start position.
func (p Position) IsZero() bool {
	return p.Offset == 0 && p.Line == 0 && p.Column == 0
}

// FromOffset computes the full position for a rune offset, clamped to
// [0, store length]. Line and column are derived by scanning the
// content before the offset.
func FromOffset(st *textstore.Store, offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > st.Len() {
		offset = st.Len()
	}

	line := 0
	lineStart := 0
	for i := 0; i < offset; i++ {
		if r, _ := st.RuneAt(i); r == '\n' {
			line++
			lineStart = i + 1
		}
	}

	return Position{Offset: offset, Line: line, Column: offset - lineStart}
}

// Resolve turns a (line, column) pair into a full position. The line is
// clamped to the store's last line and the column to the line's length.
func Resolve(st *textstore.Store, line, col int) Position {
	if line < 0 {
		line = 0
	}
	if last := LineCount(st) - 1; line > last {
		line = last
	}

	start := lineStart(st, line)
	length := lineLenFrom(st, start)

	if col < 0 {
		col = 0
	}
	if col > length {
		col = length
	}

	return Position{Offset: start + col, Line: line, Column: col}
}

// LineCount returns the number of lines in the store. An empty store
// has one (empty) line.
func LineCount(st *textstore.Store) int {
	count := 1
	for i := 0; i < st.Len(); i++ {
		if r, _ := st.RuneAt(i); r == '\n' {
			count++
		}
	}
	return count
}

// LineLen returns the rune length of the given line, excluding the
// terminating newline.
func LineLen(st *textstore.Store, line int) int {
	return lineLenFrom(st, lineStart(st, line))
}

// lineStart returns the offset of the first rune of the given line.
// Lines past the end resolve to the start of the last line.
func lineStart(st *textstore.Store, line int) int {
	if line <= 0 {
		return 0
	}

	seen := 0
	for i := 0; i < st.Len(); i++ {
		if r, _ := st.RuneAt(i); r == '\n' {
			seen++
			if seen == line {
				return i + 1
			}
		}
	}
	// Fewer newlines than requested; the last line wins.
	return lineStart(st, seen)
}

// lineLenFrom counts runes from a line start up to the next newline or
// the end of the store.
func lineLenFrom(st *textstore.Store, start int) int {
	for i := start; i < st.Len(); i++ {
		if r, _ := st.RuneAt(i); r == '\n' {
			return i - start
		}
	}
	return st.Len() - start
}

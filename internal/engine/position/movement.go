package position

import (
	"github.com/dshills/editkit/internal/engine/textstore"
)

// Movement identifies a directional navigation intent.
type Movement uint8

const (
	MoveForward     Movement = iota // One rune toward the end
	MoveBackward                    // One rune toward the start
	MoveUp                          // Previous line, column clamped
	MoveDown                        // Next line, column clamped
	MoveLineStart                   // Column zero of the current line
	MoveLineEnd                     // End of the current line
	MoveBufferStart                 // Start of the buffer
	MoveBufferEnd                   // End of the buffer
)

// String returns the movement name.
func (m Movement) String() string {
	switch m {
	case MoveForward:
		return "forward"
	case MoveBackward:
		return "backward"
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLineStart:
		return "line-start"
	case MoveLineEnd:
		return "line-end"
	case MoveBufferStart:
		return "buffer-start"
	case MoveBufferEnd:
		return "buffer-end"
	default:
		return "unknown"
	}
}

// Move translates a movement intent into a new position over the given
// store. It returns the resulting position and whether the position
// actually changed. Attempting to cross a buffer boundary is a no-op
// reporting false, never an error.
func Move(st *textstore.Store, pos Position, m Movement) (Position, bool) {
	var next Position

	switch m {
	case MoveForward:
		if pos.Offset >= st.Len() {
			return pos, false
		}
		r, _ := st.RuneAt(pos.Offset)
		if r == '\n' {
			next = Position{Offset: pos.Offset + 1, Line: pos.Line + 1, Column: 0}
		} else {
			next = Position{Offset: pos.Offset + 1, Line: pos.Line, Column: pos.Column + 1}
		}

	case MoveBackward:
		if pos.Offset <= 0 {
			return pos, false
		}
		r, _ := st.RuneAt(pos.Offset - 1)
		if r == '\n' {
			// Landing at the end of the previous line requires a
			// scan of that line for its length.
			line := pos.Line - 1
			next = Position{Offset: pos.Offset - 1, Line: line, Column: LineLen(st, line)}
		} else {
			next = Position{Offset: pos.Offset - 1, Line: pos.Line, Column: pos.Column - 1}
		}

	case MoveUp:
		if pos.Line == 0 {
			return pos, false
		}
		next = Resolve(st, pos.Line-1, pos.Column)

	case MoveDown:
		if pos.Line >= LineCount(st)-1 {
			return pos, false
		}
		next = Resolve(st, pos.Line+1, pos.Column)

	case MoveLineStart:
		next = Resolve(st, pos.Line, 0)

	case MoveLineEnd:
		next = Resolve(st, pos.Line, LineLen(st, pos.Line))

	case MoveBufferStart:
		next = Position{}

	case MoveBufferEnd:
		next = FromOffset(st, st.Len())

	default:
		return pos, false
	}

	return next, next != pos
}

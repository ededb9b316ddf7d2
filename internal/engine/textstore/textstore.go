package textstore

import (
	"errors"
)

// Errors returned by store operations.
var (
	// ErrPosOutOfRange indicates a position beyond the valid bounds.
	ErrPosOutOfRange = errors.New("position out of range")
)

// defaultCapacity is the initial gap size for a new store.
const defaultCapacity = 128

// Store is a movable-gap buffer of runes.
// Live text occupies buf[:gapStart] and buf[gapEnd:]; the region between
// them is free capacity. Indices exposed by the API are logical rune
// positions in [0, Len()].
type Store struct {
	buf      []rune
	gapStart int
	gapEnd   int
}

// New creates an empty store.
func New(opts ...Option) *Store {
	cfg := storeConfig{capacity: defaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Store{
		buf:      make([]rune, cfg.capacity),
		gapStart: 0,
		gapEnd:   cfg.capacity,
	}
}

// NewFromString creates a store holding the given text.
// The gap is placed after the initial content.
func NewFromString(s string, opts ...Option) *Store {
	runes := []rune(s)

	cfg := storeConfig{capacity: defaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	capacity := len(runes) + cfg.capacity
	st := &Store{
		buf:      make([]rune, capacity),
		gapStart: len(runes),
		gapEnd:   capacity,
	}
	copy(st.buf, runes)
	return st
}

// Len returns the number of live runes in the store.
func (st *Store) Len() int {
	return len(st.buf) - (st.gapEnd - st.gapStart)
}

// Insert writes a run of runes at the given position.
// Valid positions are [0, Len()]; anything else returns ErrPosOutOfRange
// before any mutation occurs.
func (st *Store) Insert(pos int, rs []rune) error {
	if pos < 0 || pos > st.Len() {
		return ErrPosOutOfRange
	}
	if len(rs) == 0 {
		return nil
	}

	st.moveGap(pos)
	if st.gapEnd-st.gapStart < len(rs) {
		st.grow(len(rs))
	}

	copy(st.buf[st.gapStart:], rs)
	st.gapStart += len(rs)
	return nil
}

// InsertRune writes a single rune at the given position.
func (st *Store) InsertRune(pos int, r rune) error {
	return st.Insert(pos, []rune{r})
}

// Delete removes the rune at the given position and returns it.
// Valid positions are [0, Len()); anything else returns ErrPosOutOfRange
// before any mutation occurs.
func (st *Store) Delete(pos int) (rune, error) {
	if pos < 0 || pos >= st.Len() {
		return 0, ErrPosOutOfRange
	}

	st.moveGap(pos)
	// The doomed rune now sits immediately after the gap; absorb it.
	removed := st.buf[st.gapEnd]
	st.gapEnd++
	return removed, nil
}

// RuneAt returns the rune at logical position i.
// The second return value is false when i is out of range.
func (st *Store) RuneAt(i int) (rune, bool) {
	if i < 0 || i >= st.Len() {
		return 0, false
	}
	return st.runeAt(i), true
}

// Slice returns a copy of the runes in [start, end), clamped to the
// store's bounds.
func (st *Store) Slice(start, end int) []rune {
	if start < 0 {
		start = 0
	}
	if end > st.Len() {
		end = st.Len()
	}
	if start >= end {
		return nil
	}

	out := make([]rune, end-start)
	for i := start; i < end; i++ {
		out[i-start] = st.runeAt(i)
	}
	return out
}

// String materializes the full contents as a string.
func (st *Store) String() string {
	out := make([]rune, 0, st.Len())
	out = append(out, st.buf[:st.gapStart]...)
	out = append(out, st.buf[st.gapEnd:]...)
	return string(out)
}

// Gap returns the current free capacity. Useful for tests and metrics.
func (st *Store) Gap() int {
	return st.gapEnd - st.gapStart
}

// runeAt maps a logical position to the backing slice.
func (st *Store) runeAt(i int) rune {
	if i < st.gapStart {
		return st.buf[i]
	}
	return st.buf[st.gapEnd+(i-st.gapStart)]
}

// moveGap relocates the gap so that gapStart == pos, shifting only the
// run between the old and new gap positions.
func (st *Store) moveGap(pos int) {
	if pos == st.gapStart {
		return
	}

	if pos < st.gapStart {
		// Shift the run [pos, gapStart) right, across the gap.
		d := st.gapStart - pos
		copy(st.buf[st.gapEnd-d:st.gapEnd], st.buf[pos:st.gapStart])
		st.gapStart = pos
		st.gapEnd -= d
		return
	}

	// Shift the run [gapEnd, gapEnd+d) left, across the gap.
	d := pos - st.gapStart
	copy(st.buf[st.gapStart:], st.buf[st.gapEnd:st.gapEnd+d])
	st.gapStart += d
	st.gapEnd += d
}

// grow enlarges the backing slice geometrically so the gap can hold at
// least n more runes. The gap stays at the current edit point.
func (st *Store) grow(n int) {
	needed := n - (st.gapEnd - st.gapStart)
	newCap := len(st.buf)*2 + needed

	newBuf := make([]rune, newCap)
	copy(newBuf, st.buf[:st.gapStart])

	suffixLen := len(st.buf) - st.gapEnd
	copy(newBuf[newCap-suffixLen:], st.buf[st.gapEnd:])

	st.buf = newBuf
	st.gapEnd = newCap - suffixLen
}

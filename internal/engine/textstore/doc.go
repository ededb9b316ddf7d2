// Package textstore provides the character store for the editor engine:
// a movable-gap buffer over Unicode scalar values.
//
// The store keeps live text in two runs separated by a gap of free
// capacity. An edit first relocates the gap to the edit position, paying
// a cost proportional to the distance from the previous edit, then writes
// into (or extends) the gap. Repeated edits at the same or adjacent
// position pay no relocation cost, which is the dominant pattern during
// typing and backspacing.
//
// All externally visible indices are rune counts, never byte offsets, so
// no multi-byte boundary validation is needed on insert or delete.
//
// Basic usage:
//
//	st := textstore.NewFromString("Hello World")
//	_ = st.Insert(5, []rune(","))   // "Hello, World"
//	r, _ := st.Delete(5)            // removes ',', returns it
//
// The store is exclusively owned by a single document and is not safe
// for concurrent use.
package textstore

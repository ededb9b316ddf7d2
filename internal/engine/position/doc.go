// Package position provides the coordinate model for the editor engine:
// a (offset, line, column) triple plus stateless movement functions that
// translate directional intents into new coordinates over a text store.
//
// Position invariants:
//
//   - Offset is a rune index in [0, store.Len()]
//   - Line and Column always describe the same location as Offset for
//     the store contents they were computed against
//
// Movement functions never fail; attempting to cross a buffer boundary
// is a no-op that reports false. Vertical movement treats the current
// column as the desired column and clamps it to the target line's
// length.
//
// Conversions rescan from the start of the affected region, which keeps
// the model trivially correct. Movement is not the hot path; the text
// store's local-edit behavior is what typing latency depends on.
package position

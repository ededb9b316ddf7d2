// Package document provides the edit engine: the only path by which
// document content changes.
//
// A Document is an aggregate exclusively owning a text store and a
// cursor position. Every mutation validates its input, updates the
// store, recomputes the cursor's line/column so store and coordinates
// can never disagree, and then notifies registered listeners.
//
// Change notifications are delivered synchronously, in the stack frame
// of the mutating call, in the order the mutations happened. Listeners
// observe; they must not mutate the same document from inside a
// callback, since notification happens while the mutation is still on
// the stack.
//
// The engine is single-threaded by design: one owning context
// serializes all calls, so no locking is needed or provided.
package document

// Package history provides undo/redo for documents.
//
// Document changes are captured by a Recorder, which listens for change
// notifications and assembles them into entries bracketed by command
// begin/end calls. Consecutive single-character commands of the same kind
// coalesce into one entry when they form contiguous word text, so typing
// a word undoes as a unit instead of one keystroke at a time.
//
// Undo and redo replay the recorded edits against the document with
// recording suspended, so a replay never records itself as new history.
package history

package history

// CommandKind identifies the user-level command that produced an entry.
// Coalescing only combines entries of identical kind, so the set of
// kinds directly controls undo granularity. Callers may define their
// own kinds; these cover the built-in editing commands.
type CommandKind string

const (
	CommandSelfInsert     CommandKind = "self-insert"
	CommandInsertText     CommandKind = "insert-text"
	CommandDeleteBackward CommandKind = "delete-backward"
	CommandDeleteForward  CommandKind = "delete-forward"
	CommandDeleteRange    CommandKind = "delete-range"
	CommandPaste          CommandKind = "paste"
)

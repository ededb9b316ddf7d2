package history

// History holds the undo and redo stacks. It does no replaying itself;
// the Recorder pops entries, replays them against the document, and
// moves them between stacks (or restores them on failure).
type History struct {
	undo []*Entry
	redo []*Entry

	maxEntries    int
	mergeDisabled bool
}

// NewHistory creates a history limited to maxEntries undo steps, with
// merging enabled. Non-positive values select the default of 1000.
func NewHistory(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = 1000
	}
	return &History{maxEntries: maxEntries}
}

// SetMergeEnabled controls whether Push attempts to coalesce entries.
// With merging off every command becomes its own undo step.
func (h *History) SetMergeEnabled(enabled bool) {
	h.mergeDisabled = !enabled
}

// Push submits a finished entry. It first tries to merge into the top
// undo entry; otherwise the entry is pushed as new, evicting the oldest
// entries beyond the limit. Either way the redo stack is cleared: new
// edits invalidate the redo timeline. It reports whether the entry was
// merged rather than pushed.
func (h *History) Push(e *Entry) bool {
	h.redo = nil

	if n := len(h.undo); !h.mergeDisabled && n > 0 && h.undo[n-1].merge(e) {
		return true
	}

	h.undo = append(h.undo, e)
	if excess := len(h.undo) - h.maxEntries; excess > 0 {
		h.undo = h.undo[excess:]
	}
	return false
}

// CanUndo reports whether an undo step is available.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether a redo step is available.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// UndoCount returns the number of undo steps available.
func (h *History) UndoCount() int { return len(h.undo) }

// RedoCount returns the number of redo steps available.
func (h *History) RedoCount() int { return len(h.redo) }

// Clear discards both stacks.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}

// popUndo removes and returns the top undo entry, or nil when empty.
func (h *History) popUndo() *Entry {
	n := len(h.undo)
	if n == 0 {
		return nil
	}
	e := h.undo[n-1]
	h.undo = h.undo[:n-1]
	return e
}

// popRedo removes and returns the top redo entry, or nil when empty.
func (h *History) popRedo() *Entry {
	n := len(h.redo)
	if n == 0 {
		return nil
	}
	e := h.redo[n-1]
	h.redo = h.redo[:n-1]
	return e
}

// restoreUndo puts an entry back on the undo stack after a failed replay.
func (h *History) restoreUndo(e *Entry) { h.undo = append(h.undo, e) }

// restoreRedo puts an entry back on the redo stack after a failed replay.
func (h *History) restoreRedo(e *Entry) { h.redo = append(h.redo, e) }

// moveToRedo records a successful undo.
func (h *History) moveToRedo(e *Entry) { h.redo = append(h.redo, e) }

// moveToUndo records a successful redo. The entry returns to the undo
// stack without merge consideration and without clearing redo.
func (h *History) moveToUndo(e *Entry) { h.undo = append(h.undo, e) }

package emailbuilder

// maxHistory caps the number of retained snapshots. When the cap is
// exceeded the oldest entry is evicted and the current index does not
// advance past the cap.
const maxHistory = 50

// History is a linear undo/redo stack over full template snapshots.
// Every entry is an independent deep copy: canvas mutation can never
// retroactively corrupt an older state.
type History struct {
	snapshots []*Template
	index     int
}

// NewHistory returns an empty history
func NewHistory() *History {
	return &History{index: -1}
}

// Commit stores a snapshot of the template. Any redo branch beyond the
// current index is discarded first (standard linear-history semantics).
func (h *History) Commit(t *Template) error {
	if t == nil {
		return nil
	}
	snapshot, err := t.Clone()
	if err != nil {
		return err
	}

	if h.index < len(h.snapshots)-1 {
		h.snapshots = h.snapshots[:h.index+1]
	}

	h.snapshots = append(h.snapshots, snapshot)
	if len(h.snapshots) > maxHistory {
		h.snapshots = h.snapshots[1:]
	} else {
		h.index++
	}
	return nil
}

// Undo steps back one snapshot. At the oldest entry it is a no-op and
// returns nil.
func (h *History) Undo() *Template {
	if h.index <= 0 {
		return nil
	}
	h.index--
	return h.current()
}

// Redo steps forward one snapshot. At the newest entry it is a no-op and
// returns nil.
func (h *History) Redo() *Template {
	if h.index >= len(h.snapshots)-1 {
		return nil
	}
	h.index++
	return h.current()
}

// CanUndo reports whether an older snapshot exists
func (h *History) CanUndo() bool { return h.index > 0 }

// CanRedo reports whether a newer snapshot exists
func (h *History) CanRedo() bool { return h.index < len(h.snapshots)-1 }

// Len returns the number of retained snapshots
func (h *History) Len() int { return len(h.snapshots) }

// Index returns the current position in the stack
func (h *History) Index() int { return h.index }

// current returns an independent copy of the snapshot at the index, so the
// caller's subsequent edits never reach back into history.
func (h *History) current() *Template {
	if h.index < 0 || h.index >= len(h.snapshots) {
		return nil
	}
	clone, err := h.snapshots[h.index].Clone()
	if err != nil {
		return nil
	}
	return clone
}

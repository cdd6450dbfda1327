package tui

import "time"

// History is a bounded undo/redo stack of editor snapshots for the active
// tab. Edits closer together than the merge window share one undo step.
type History struct {
	undo  []string
	redo  []string
	limit int
	merge time.Duration
	last  time.Time
}

// NewHistory creates an empty history keeping at most limit snapshots
func NewHistory(limit int, merge time.Duration) *History {
	if limit < 1 {
		limit = 1
	}
	return &History{limit: limit, merge: merge}
}

// Record stores the text as it was before an edit made at now
func (h *History) Record(before string, now time.Time) {
	h.redo = nil
	if len(h.undo) > 0 && now.Sub(h.last) < h.merge {
		return
	}
	h.last = now
	h.undo = append(h.undo, before)
	if len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
}

// Undo returns the text to restore in place of current
func (h *History) Undo(current string) (string, bool) {
	if len(h.undo) == 0 {
		return "", false
	}
	prev := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current)
	h.last = time.Time{}
	return prev, true
}

// Redo reverses the most recent Undo
func (h *History) Redo(current string) (string, bool) {
	if len(h.redo) == 0 {
		return "", false
	}
	next := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current)
	h.last = time.Time{}
	return next, true
}

// Reset forgets every snapshot
func (h *History) Reset() {
	h.undo = nil
	h.redo = nil
	h.last = time.Time{}
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

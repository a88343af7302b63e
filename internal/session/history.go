package session

import "github.com/piwi3910/giftwrap/internal/model"

const defaultMaxDepth = 50

// Snapshot captures an order's quotes at a point in time.
type Snapshot struct {
	Quotes []model.Quote
	Label  string // Human-readable description (e.g. "Remove Quote")
}

// History manages undo/redo stacks of order snapshots.
type History struct {
	undoStack []Snapshot
	redoStack []Snapshot
	maxDepth  int
}

// NewHistory creates a History with the default max depth of 50.
func NewHistory() *History {
	return &History{
		maxDepth: defaultMaxDepth,
	}
}

// Push saves a snapshot onto the undo stack and clears the redo stack.
// This should be called before the modification is applied.
func (h *History) Push(s Snapshot) {
	h.undoStack = append(h.undoStack, s)
	if len(h.undoStack) > h.maxDepth {
		h.undoStack = h.undoStack[len(h.undoStack)-h.maxDepth:]
	}
	h.redoStack = nil
}

// Undo pops the most recent snapshot and pushes current onto the redo
// stack. It returns false when there is nothing to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.undoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, current)
	return last, true
}

// Redo pops the most recent undone snapshot and pushes current onto the
// undo stack. It returns false when there is nothing to redo.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.redoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, current)
	return last, true
}

// CanUndo returns true if there is at least one snapshot to undo.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if there is at least one snapshot to redo.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// Clear removes all undo and redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// MakeSnapshot copies the order's current quotes.
func MakeSnapshot(order *model.Order, label string) Snapshot {
	return Snapshot{
		Quotes: order.Quotes(),
		Label:  label,
	}
}

// Restore replaces the order's quotes with the snapshot's.
func Restore(order *model.Order, s Snapshot) {
	order.Replace(s.Quotes)
}

// UndoOrder rolls the order back one step. It returns the label of the
// undone change and false if there was nothing to undo.
func (h *History) UndoOrder(order *model.Order) (string, bool) {
	s, ok := h.Undo(MakeSnapshot(order, ""))
	if !ok {
		return "", false
	}
	Restore(order, s)
	return s.Label, true
}

// RedoOrder reapplies the last undone change to the order.
func (h *History) RedoOrder(order *model.Order) (string, bool) {
	s, ok := h.Redo(MakeSnapshot(order, ""))
	if !ok {
		return "", false
	}
	Restore(order, s)
	return s.Label, true
}

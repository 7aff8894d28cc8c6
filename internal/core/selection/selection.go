// Package selection implements the bulk-triage workflow: a multi-select
// set guarded by an explicit confirm/cancel state machine.
//
// States: idle -> selecting -> confirming -> (applying | cancelled).
// At most one action may be awaiting confirmation, and selection edits
// are rejected while one is.
package selection

import "errors"

var (
	// ErrNothingSelected is returned when a confirmation is requested
	// with an empty selection set.
	ErrNothingSelected = errors.New("selection: nothing selected")
	// ErrConfirmPending is returned when an action is requested while
	// another is already awaiting confirmation.
	ErrConfirmPending = errors.New("selection: confirmation already pending")
)

// Action is a bulk operation the user can confirm.
type Action string

const (
	ActionShortlist Action = "SHORTLISTED"
	ActionReject    Action = "REJECTED"
	// ActionDeselect clears the selection locally; it never reaches the
	// network.
	ActionDeselect Action = "DESELECT"
)

// State names the workflow phase, per the confirm ritual.
type State int

const (
	StateIdle State = iota
	StateSelecting
	StateConfirming
)

// Workflow tracks the selection set and the pending confirmation. It is
// view-local and torn down with the view.
type Workflow struct {
	order   []int
	members map[int]struct{}
	pending Action
	hasPend bool
}

// New returns an empty workflow in the idle state.
func New() *Workflow {
	return &Workflow{members: make(map[int]struct{})}
}

// State derives the current phase from the set and pending action.
func (w *Workflow) State() State {
	switch {
	case w.hasPend:
		return StateConfirming
	case len(w.order) > 0:
		return StateSelecting
	default:
		return StateIdle
	}
}

// Toggle flips membership of id. Toggling is rejected while a
// confirmation is pending (the UI disables the checkboxes too).
func (w *Workflow) Toggle(id int) bool {
	if w.hasPend {
		return false
	}
	if _, ok := w.members[id]; ok {
		delete(w.members, id)
		for i, v := range w.order {
			if v == id {
				w.order = append(w.order[:i], w.order[i+1:]...)
				break
			}
		}
		return true
	}
	w.members[id] = struct{}{}
	w.order = append(w.order, id)
	return true
}

// IsSelected reports membership of id.
func (w *Workflow) IsSelected(id int) bool {
	_, ok := w.members[id]
	return ok
}

// Selected returns the selection set in toggle order.
func (w *Workflow) Selected() []int {
	out := make([]int, len(w.order))
	copy(out, w.order)
	return out
}

// Count returns the selection size.
func (w *Workflow) Count() int { return len(w.order) }

// RequestConfirm moves the workflow into the confirming state for the
// given action. Only one action may be pending at a time.
func (w *Workflow) RequestConfirm(action Action) error {
	if w.hasPend {
		return ErrConfirmPending
	}
	if len(w.order) == 0 {
		return ErrNothingSelected
	}
	w.pending = action
	w.hasPend = true
	return nil
}

// Pending returns the action awaiting confirmation, if any.
func (w *Workflow) Pending() (Action, bool) {
	return w.pending, w.hasPend
}

// Cancel abandons the pending confirmation and returns to selecting.
// The selection set is preserved.
func (w *Workflow) Cancel() {
	w.pending = ""
	w.hasPend = false
}

// Confirm commits the pending action. The selection set and pending
// state are cleared immediately; the returned ids are what the caller
// dispatches (nothing, for ActionDeselect).
func (w *Workflow) Confirm() (Action, []int, bool) {
	if !w.hasPend {
		return "", nil, false
	}
	action := w.pending
	ids := w.Selected()
	w.reset()
	return action, ids, true
}

// Retain drops selected ids that are no longer part of the filtered
// queue, keeping the set a subset of what is on screen.
func (w *Workflow) Retain(visible []int) {
	keep := make(map[int]struct{}, len(visible))
	for _, id := range visible {
		keep[id] = struct{}{}
	}
	kept := w.order[:0]
	for _, id := range w.order {
		if _, ok := keep[id]; ok {
			kept = append(kept, id)
		} else {
			delete(w.members, id)
		}
	}
	w.order = kept
}

// Clear empties the selection and any pending confirmation.
func (w *Workflow) Clear() { w.reset() }

func (w *Workflow) reset() {
	w.order = nil
	w.members = make(map[int]struct{})
	w.pending = ""
	w.hasPend = false
}

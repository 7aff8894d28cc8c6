package tui

import "github.com/s-stratton/simplyjobs/internal/core/gesture"

// unitsPerCell converts terminal columns to gesture distance units, so
// the configured sensitivity keeps its usual scale (one hundred units,
// ten columns).
const unitsPerCell = 10

// scrollLockOwnerDrag names the drag tracker's hold on the scroll lock.
const scrollLockOwnerDrag = "drag"

// dragTracker follows one pointer drag on the top card, from press to
// release, and turns the release into a gesture classification. It
// holds the scroll lock for the duration of the drag and releases it on
// every exit path, including aborts.
type dragTracker struct {
	lock    *ScrollLock
	active  bool
	itemID  int
	originX int
	lastX   int
}

// Start begins tracking a drag on the given item.
func (d *dragTracker) Start(itemID, x int) {
	d.active = true
	d.itemID = itemID
	d.originX = x
	d.lastX = x
	if d.lock != nil {
		d.lock.Acquire(scrollLockOwnerDrag)
	}
}

// Move records pointer motion during an active drag.
func (d *dragTracker) Move(x int) {
	if !d.active {
		return
	}
	d.lastX = x
}

// Release ends the drag and classifies it. The returned id is only
// meaningful when active was true.
func (d *dragTracker) Release(x int, sensitivity float64) (int, gesture.Outcome, bool) {
	if !d.active {
		return 0, gesture.Cancel, false
	}
	d.lastX = x
	id := d.itemID
	dx := float64(x-d.originX) * unitsPerCell
	d.reset()
	return id, gesture.Classify(dx, sensitivity), true
}

// Abort cancels an in-flight drag without classifying it. Used when an
// overlay opens or the view is torn down mid-drag.
func (d *dragTracker) Abort() {
	if !d.active {
		return
	}
	d.reset()
}

// Active reports whether a drag is in progress.
func (d *dragTracker) Active() bool { return d.active }

// OffsetCells returns the current horizontal displacement in columns,
// used to shift the card while dragging.
func (d *dragTracker) OffsetCells() int {
	if !d.active {
		return 0
	}
	return d.lastX - d.originX
}

func (d *dragTracker) reset() {
	d.active = false
	d.itemID = 0
	d.originX = 0
	d.lastX = 0
	if d.lock != nil {
		d.lock.Release(scrollLockOwnerDrag)
	}
}

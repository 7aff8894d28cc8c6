package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s-stratton/simplyjobs/internal/core/gesture"
)

func TestDragTracker_right_swipe(t *testing.T) {
	lock := NewScrollLock()
	d := dragTracker{lock: lock}

	d.Start(7, 40)
	assert.True(t, lock.Locked())
	d.Move(50)

	// 15 columns right = 150 units, past the default sensitivity.
	id, outcome, ok := d.Release(55, 100)

	require.True(t, ok)
	assert.Equal(t, 7, id)
	assert.Equal(t, gesture.Primary, outcome)
	assert.False(t, lock.Locked())
	assert.False(t, d.Active())
}

func TestDragTracker_left_swipe(t *testing.T) {
	d := dragTracker{lock: NewScrollLock()}

	d.Start(7, 40)
	_, outcome, ok := d.Release(25, 100)

	require.True(t, ok)
	assert.Equal(t, gesture.Secondary, outcome)
}

func TestDragTracker_short_drag_cancels(t *testing.T) {
	lock := NewScrollLock()
	d := dragTracker{lock: lock}

	d.Start(7, 40)
	_, outcome, ok := d.Release(45, 100)

	require.True(t, ok)
	assert.Equal(t, gesture.Cancel, outcome)
	assert.False(t, lock.Locked())
}

func TestDragTracker_release_without_start(t *testing.T) {
	d := dragTracker{lock: NewScrollLock()}

	_, _, ok := d.Release(45, 100)

	assert.False(t, ok)
}

func TestDragTracker_abort_releases_lock(t *testing.T) {
	lock := NewScrollLock()
	d := dragTracker{lock: lock}

	d.Start(7, 40)
	d.Abort()

	assert.False(t, lock.Locked())
	assert.False(t, d.Active())
}

func TestDragTracker_offset_cells(t *testing.T) {
	d := dragTracker{lock: NewScrollLock()}
	assert.Equal(t, 0, d.OffsetCells())

	d.Start(7, 40)
	d.Move(34)

	assert.Equal(t, -6, d.OffsetCells())
}

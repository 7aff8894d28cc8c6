package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle_twice_restores_original_set(t *testing.T) {
	w := New()

	w.Toggle(5)
	w.Toggle(5)

	assert.Empty(t, w.Selected())
	assert.Equal(t, StateIdle, w.State())
}

func TestToggle_preserves_order(t *testing.T) {
	w := New()

	w.Toggle(3)
	w.Toggle(1)
	w.Toggle(2)
	w.Toggle(1)

	assert.Equal(t, []int{3, 2}, w.Selected())
	assert.True(t, w.IsSelected(3))
	assert.False(t, w.IsSelected(1))
}

func TestToggle_empty_set_still_permits_toggles(t *testing.T) {
	w := New()
	w.Toggle(1)
	w.Toggle(1)

	assert.True(t, w.Toggle(2))
	assert.Equal(t, []int{2}, w.Selected())
}

func TestRequestConfirm_requires_selection(t *testing.T) {
	w := New()

	err := w.RequestConfirm(ActionShortlist)

	assert.ErrorIs(t, err, ErrNothingSelected)
	assert.Equal(t, StateIdle, w.State())
}

func TestRequestConfirm_only_one_pending(t *testing.T) {
	w := New()
	w.Toggle(1)

	require.NoError(t, w.RequestConfirm(ActionShortlist))
	err := w.RequestConfirm(ActionReject)

	assert.ErrorIs(t, err, ErrConfirmPending)
	pending, ok := w.Pending()
	assert.True(t, ok)
	assert.Equal(t, ActionShortlist, pending)
}

func TestToggle_rejected_while_confirming(t *testing.T) {
	w := New()
	w.Toggle(1)
	require.NoError(t, w.RequestConfirm(ActionReject))

	assert.False(t, w.Toggle(2))
	assert.Equal(t, []int{1}, w.Selected())
}

func TestCancel_preserves_selection(t *testing.T) {
	w := New()
	w.Toggle(1)
	w.Toggle(2)
	require.NoError(t, w.RequestConfirm(ActionReject))

	w.Cancel()

	assert.Equal(t, StateSelecting, w.State())
	assert.Equal(t, []int{1, 2}, w.Selected())
	_, ok := w.Pending()
	assert.False(t, ok)
}

func TestConfirm_clears_set_and_pending(t *testing.T) {
	w := New()
	w.Toggle(4)
	w.Toggle(9)
	require.NoError(t, w.RequestConfirm(ActionShortlist))

	action, ids, ok := w.Confirm()

	assert.True(t, ok)
	assert.Equal(t, ActionShortlist, action)
	assert.Equal(t, []int{4, 9}, ids)
	assert.Empty(t, w.Selected())
	assert.Equal(t, StateIdle, w.State())

	// A new cycle is immediately possible.
	assert.True(t, w.Toggle(4))
	assert.NoError(t, w.RequestConfirm(ActionReject))
}

func TestConfirm_without_pending(t *testing.T) {
	w := New()
	w.Toggle(1)

	_, _, ok := w.Confirm()

	assert.False(t, ok)
	assert.Equal(t, []int{1}, w.Selected())
}

func TestConfirm_deselect_is_local(t *testing.T) {
	w := New()
	w.Toggle(1)
	require.NoError(t, w.RequestConfirm(ActionDeselect))

	action, ids, ok := w.Confirm()

	assert.True(t, ok)
	assert.Equal(t, ActionDeselect, action)
	assert.Equal(t, []int{1}, ids)
	assert.Empty(t, w.Selected())
}

func TestRetain_restricts_to_visible_queue(t *testing.T) {
	w := New()
	w.Toggle(1)
	w.Toggle(2)
	w.Toggle(3)

	w.Retain([]int{3, 1})

	assert.Equal(t, []int{1, 3}, w.Selected())
	assert.False(t, w.IsSelected(2))
}

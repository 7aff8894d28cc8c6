package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToastController_push(t *testing.T) {
	c := NewToastController()

	c.Error("failed to update status")

	assert.True(t, c.HasToasts())
	assert.Len(t, c.Toasts(), 1)
	assert.Equal(t, "failed to update status", c.Toasts()[0].message)
	assert.Equal(t, toastError, c.Toasts()[0].level)
	assert.Equal(t, defaultToastTTL, c.Toasts()[0].remaining)
}

func TestToastController_push_evicts_oldest_at_max(t *testing.T) {
	c := NewToastController()

	c.Info("a")
	c.Info("b")
	c.Info("c")
	c.Info("d")

	assert.Len(t, c.Toasts(), defaultMaxToasts)
	assert.Equal(t, "b", c.Toasts()[0].message)
}

func TestToastController_tick_removes_expired(t *testing.T) {
	c := NewToastController()
	c.Info("expires")
	c.Info("survives")
	c.toasts[0].remaining = 50 * time.Millisecond

	c.Tick(100 * time.Millisecond)

	assert.Len(t, c.Toasts(), 1)
	assert.Equal(t, "survives", c.Toasts()[0].message)
}

func TestToastController_dismiss(t *testing.T) {
	c := NewToastController()
	c.Info("first")
	c.Info("second")

	c.Dismiss()

	assert.Len(t, c.Toasts(), 1)
	assert.Equal(t, "first", c.Toasts()[0].message)

	c.Dismiss()
	c.Dismiss() // dismissing empty must not panic
	assert.False(t, c.HasToasts())
}

func TestRenderToasts_empty(t *testing.T) {
	assert.Empty(t, renderToasts(NewToastController()))
}

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultToastTTL   = 5 * time.Second
	defaultMaxToasts  = 3
	toastTickInterval = 100 * time.Millisecond
)

type toastLevel int

const (
	toastInfo toastLevel = iota
	toastError
)

type toast struct {
	level     toastLevel
	message   string
	remaining time.Duration
}

// ToastController manages the lifecycle of transient notices: failure
// surfacing for network errors and the occasional informational nudge.
type ToastController struct {
	toasts  []toast
	ticking bool
}

func NewToastController() *ToastController {
	return &ToastController{}
}

// Push adds a notice. Beyond defaultMaxToasts the oldest is evicted.
func (c *ToastController) Push(level toastLevel, message string) {
	c.toasts = append(c.toasts, toast{
		level:     level,
		message:   message,
		remaining: defaultToastTTL,
	})
	if len(c.toasts) > defaultMaxToasts {
		c.toasts = c.toasts[len(c.toasts)-defaultMaxToasts:]
	}
}

// Error pushes an error-level notice.
func (c *ToastController) Error(message string) { c.Push(toastError, message) }

// Info pushes an info-level notice.
func (c *ToastController) Info(message string) { c.Push(toastInfo, message) }

// Tick decrements remaining TTLs and drops expired toasts.
func (c *ToastController) Tick(d time.Duration) {
	alive := c.toasts[:0]
	for _, t := range c.toasts {
		t.remaining -= d
		if t.remaining > 0 {
			alive = append(alive, t)
		}
	}
	c.toasts = alive
}

// Dismiss removes the newest toast.
func (c *ToastController) Dismiss() {
	if len(c.toasts) > 0 {
		c.toasts = c.toasts[:len(c.toasts)-1]
	}
}

// HasToasts reports whether any toasts are active.
func (c *ToastController) HasToasts() bool { return len(c.toasts) > 0 }

// Toasts returns the active toasts, oldest first.
func (c *ToastController) Toasts() []toast { return c.toasts }

// Ticking reports whether the TTL timer is running.
func (c *ToastController) Ticking() bool { return c.ticking }

// SetTicking records the TTL timer state.
func (c *ToastController) SetTicking(v bool) { c.ticking = v }

type toastTickMsg struct{}

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(time.Time) tea.Msg {
		return toastTickMsg{}
	})
}

// renderToasts stacks the active toasts for the bottom-right corner.
func renderToasts(c *ToastController) string {
	if !c.HasToasts() {
		return ""
	}
	lines := make([]string, 0, len(c.toasts))
	for _, t := range c.Toasts() {
		style := toastInfoStyle
		if t.level == toastError {
			style = toastErrorStyle
		}
		lines = append(lines, style.Render(t.message))
	}
	return lipgloss.JoinVertical(lipgloss.Right, lines...)
}

package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the global and per-view key bindings. Swipes also come
// in through mouse drags; the left/right bindings are the keyboard
// equivalent.
type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	Skip      key.Binding
	Expand    key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	ToggleSel key.Binding
	Shortlist key.Binding
	Reject    key.Binding
	Deselect  key.Binding
	ViewMode  key.Binding
	Up        key.Binding
	Down      key.Binding
	Enter     key.Binding
	Delete    key.Binding
	NextView  key.Binding
	Back      key.Binding
	Refresh   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "swipe left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "swipe right"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "skip"),
		),
		Expand: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "details"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next category"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev category"),
		),
		ToggleSel: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "select"),
		),
		Shortlist: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "shortlist selected"),
		),
		Reject: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reject selected"),
		),
		Deselect: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "deselect all"),
		),
		ViewMode: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "stack/list"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch view"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Expand, k.NextView, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Skip, k.Expand},
		{k.NextTab, k.PrevTab, k.ToggleSel, k.Shortlist, k.Reject, k.Deselect},
		{k.ViewMode, k.Up, k.Down, k.Enter, k.Delete},
		{k.NextView, k.Back, k.Refresh, k.Help, k.Quit},
	}
}

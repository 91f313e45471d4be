// Package keymap provides key binding definitions for the TUI.
// Bindings are declared once here and consumed both by the Update loop
// (via key.Matches) and by the help bar.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// MaxActionHotkeys is the number of actions reachable through digit keys.
const MaxActionHotkeys = 9

// KeyMap holds every binding the TUI responds to.
type KeyMap struct {
	// Scenario menu
	Up     key.Binding
	Down   key.Binding
	Select key.Binding

	// Action bar
	Focus       key.Binding
	ActionLeft  key.Binding
	ActionRight key.Binding
	Fire        key.Binding // 1-9

	// Detail scrolling
	PageUp   key.Binding
	PageDown key.Binding

	Help key.Binding
	Quit key.Binding
}

// Default returns the default key bindings.
func Default() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open / run"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "menu/actions"),
		),
		ActionLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev action"),
		),
		ActionRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next action"),
		),
		Fire: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "run action"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "scroll down"),
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
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Fire, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Focus, k.ActionLeft, k.ActionRight, k.Fire},
		{k.PageUp, k.PageDown},
		{k.Help, k.Quit},
	}
}

// ActionIndex maps a digit key to a zero-based action index. It returns
// false for anything other than 1-9.
func ActionIndex(s string) (int, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '1'), true
}

package common

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings of the feed screen.
type KeyMap struct {
	Quit     key.Binding
	Refresh  key.Binding // r - re-run the cycle for the selected user
	PrevUser key.Binding // ← / h - previous option in the selection control
	NextUser key.Binding // → / l - next option in the selection control
	Up       key.Binding // focus previous trigger control
	Down     key.Binding // focus next trigger control
	Toggle   key.Binding // enter / space - click the focused trigger
	PageUp   key.Binding
	PageDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		PrevUser: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev user"),
		),
		NextUser: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next user"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle comments"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f"),
			key.WithHelp("pgdn", "page down"),
		),
	}
}

// HelpLine renders the short help shown under the feed.
func (k KeyMap) HelpLine() string {
	bindings := []key.Binding{k.PrevUser, k.NextUser, k.Up, k.Down, k.Toggle, k.Refresh, k.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the interface keys. In play mode every other key is game
// input, so only Quit and Mode are reserved there.
type KeyMap struct {
	Quit key.Binding
	Mode key.Binding

	// Console prompt.
	CloseConsole key.Binding
	Submit       key.Binding

	// Bindings editor.
	Exit            key.Binding
	RebindPrimary   key.Binding
	RebindAlternate key.Binding
	UnbindPrimary   key.Binding
	UnbindAlternate key.Binding
	Reset           key.Binding
	Save            key.Binding
}

// DefaultKeyMap returns the default interface keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Mode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch mode"),
		),
		CloseConsole: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Exit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		RebindPrimary: key.NewBinding(
			key.WithKeys("enter", "p"),
			key.WithHelp("enter/p", "rebind primary"),
		),
		RebindAlternate: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "rebind alternate"),
		),
		UnbindPrimary: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "unbind primary"),
		),
		UnbindAlternate: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "unbind alternate"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
	}
}

// helpLine renders the short help for a set of bindings.
func helpLine(bindings ...key.Binding) string {
	s := ""
	for i, b := range bindings {
		if i > 0 {
			s += "  "
		}
		h := b.Help()
		s += h.Key + ": " + h.Desc
	}
	return s
}

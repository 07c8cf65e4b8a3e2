package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the fixed key bindings. Not configurable.
type keyMap struct {
	Quit      key.Binding
	EditLeft  key.Binding
	EditRight key.Binding
	Clear     key.Binding
	Diff      key.Binding
}

var defaultKeyMap = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	EditLeft: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "edit left"),
	),
	EditRight: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "edit right"),
	),
	Clear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear input"),
	),
	Diff: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "diff text"),
	),
}

// ShortHelp implements help.KeyMap for the one-line help bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.EditLeft, k.EditRight, k.Clear, k.Diff}
}

// FullHelp implements help.KeyMap; the full view is never shown.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

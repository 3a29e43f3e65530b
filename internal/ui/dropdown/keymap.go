package dropdown

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings active while a panel is open. Tab-order
// is confined to the panel: Next and Prev cycle within the focusable
// options, Up and Down clamp at the edges.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Next      key.Binding
	Prev      key.Binding
	Select    key.Binding
	SelectAll key.Binding
	Filter    key.Binding
	Close     key.Binding
}

// DefaultKeyMap is the built-in binding set. Vim-style navigation (j/k)
// alongside arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next option"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-Tab", "previous option"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("Enter", "select"),
	),
	SelectAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "select all"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "close"),
	),
}

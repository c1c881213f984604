package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings of the remote control
type KeyMap struct {
	Digits    key.Binding
	Enter     key.Binding
	Backspace key.Binding
	Up        key.Binding
	Down      key.Binding
	Back      key.Binding
	Forward   key.Binding
	Red       key.Binding
	Green     key.Binding
	Yellow    key.Binding
	Blue      key.Binding
	Favorite  key.Binding
	Store     key.Binding
	Cancel    key.Binding
	Help      key.Binding
	Chain     key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Digits:    key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("0-9", "page")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "go")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete/back")),
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "prev page")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next page")),
		Back:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "back")),
		Forward:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "forward")),
		Red:       key.NewBinding(key.WithKeys("r", "f1"), key.WithHelp("r/F1", "red")),
		Green:     key.NewBinding(key.WithKeys("g", "f2"), key.WithHelp("g/F2", "green")),
		Yellow:    key.NewBinding(key.WithKeys("y", "f3"), key.WithHelp("y/F3", "yellow")),
		Blue:      key.NewBinding(key.WithKeys("b", "f4"), key.WithHelp("b/F4", "blue")),
		Favorite:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f+0-9", "favorite")),
		Store:     key.NewBinding(key.WithKeys("F"), key.WithHelp("F+0-9", "store favorite")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Chain:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view article")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Digits, k.Back, k.Favorite, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digits, k.Enter, k.Backspace, k.Cancel},
		{k.Up, k.Down, k.Back, k.Forward},
		{k.Red, k.Green, k.Yellow, k.Blue},
		{k.Favorite, k.Store, k.Chain, k.Help, k.Quit},
	}
}

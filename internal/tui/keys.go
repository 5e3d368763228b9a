package tui

import "github.com/charmbracelet/bubbles/key"

// cardKeyMap is active while the selected slot shows a card (no form focus).
type cardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Edit   key.Binding
	Delete key.Binding
	Add    key.Binding
	Copy   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newCardKeyMap() cardKeyMap {
	return cardKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "ctrl+p"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "ctrl+n"), key.WithHelp("↓/j", "down")),
		Edit:   key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Delete: key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
		Add:    key.NewBinding(key.WithKeys("a", "+"), key.WithHelp("a", "add")),
		Copy:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k cardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Edit, k.Delete, k.Add, k.Copy, k.Help, k.Quit}
}

func (k cardKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// formKeyMap documents the form keys for the footer; the form matches on the
// raw key strings itself.
type formKeyMap struct {
	Next   key.Binding
	Submit key.Binding
	Cancel key.Binding
	Leave  key.Binding
}

func newFormKeyMap() formKeyMap {
	return formKeyMap{
		Next:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Leave:  key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "leave form")),
	}
}

func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Cancel, k.Leave}
}

func (k formKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

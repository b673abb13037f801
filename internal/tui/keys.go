package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add        key.Binding
	Edit       key.Binding
	ToggleDone key.Binding
	Delete     key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	PickFilter key.Binding
	EmptyTrash key.Binding
	Quit       key.Binding

	Submit key.Binding
	Cancel key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		ToggleDone: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "done")),
		Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete/restore")),
		NextFilter: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		PrevFilter: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev view")),
		PickFilter: key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "view")),
		EmptyTrash: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "empty trash")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

func (k keyMap) short() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.ToggleDone, k.Delete, k.NextFilter, k.EmptyTrash}
}

func (k keyMap) full() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.ToggleDone, k.Delete, k.NextFilter, k.PrevFilter, k.PickFilter, k.EmptyTrash}
}

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add    key.Binding
	Check  key.Binding
	Edit   key.Binding
	Trash  key.Binding
	Filter key.Binding
	Pick   key.Binding
	Copy   key.Binding
	Help   key.Binding
	Quit   key.Binding

	Submit key.Binding
	Cancel key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Check:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "check")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Trash:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "trash/restore")),
		Filter: key.NewBinding(key.WithKeys("f", "tab"), key.WithHelp("f", "next filter")),
		Pick:   key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "pick filter")),
		Copy:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "keys")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

// listKeys are shown next to the list's own navigation help.
func (k keyMap) listKeys() []key.Binding {
	return []key.Binding{k.Add, k.Check, k.Edit, k.Trash, k.Filter, k.Copy, k.Help}
}

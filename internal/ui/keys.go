package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the desktop's key bindings.
type keyMap struct {
	Quit        key.Binding
	Terminal    key.Binding
	Close       key.Binding
	Minimize    key.Binding
	Maximize    key.Binding
	Background  key.Binding
	Submit      key.Binding
	HistoryPrev key.Binding
	HistoryNext key.Binding
	Complete    key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Terminal:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "terminal")),
		Close:       key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "close")),
		Minimize:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "minimize")),
		Maximize:    key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "maximize")),
		Background:  key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "wallpaper")),
		Submit:      key.NewBinding(key.WithKeys("enter")),
		HistoryPrev: key.NewBinding(key.WithKeys("up")),
		HistoryNext: key.NewBinding(key.WithKeys("down")),
		Complete:    key.NewBinding(key.WithKeys("tab")),
		PageUp:      key.NewBinding(key.WithKeys("pgup")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown")),
	}
}

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	next      key.Binding
	prev      key.Binding
	submit    key.Binding
	reset     key.Binding
	copy      key.Binding
	buildInfo key.Binding
	back      key.Binding
	quit      key.Binding
}

var keys = keyMap{
	next:      key.NewBinding(key.WithKeys("tab", "down")),
	prev:      key.NewBinding(key.WithKeys("shift+tab", "up")),
	submit:    key.NewBinding(key.WithKeys("enter")),
	reset:     key.NewBinding(key.WithKeys("ctrl+r")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y")),
	buildInfo: key.NewBinding(key.WithKeys("f1")),
	back:      key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
}

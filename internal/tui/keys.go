package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	toggle  key.Binding
	clear   key.Binding
	delete  key.Binding
	reload  key.Binding
	copy    key.Binding
	version key.Binding
	enter   key.Binding
	esc     key.Binding
	quit    key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	toggle:  key.NewBinding(key.WithKeys(" ", "x")),
	clear:   key.NewBinding(key.WithKeys("c")),
	delete:  key.NewBinding(key.WithKeys("d")),
	reload:  key.NewBinding(key.WithKeys("r")),
	copy:    key.NewBinding(key.WithKeys("y")),
	version: key.NewBinding(key.WithKeys("v")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),
}

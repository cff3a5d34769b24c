package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the fixed key bindings of the counter screen.
type KeyMap struct {
	Quit      key.Binding
	Step      key.Binding
	Decrement key.Binding
	Increment key.Binding
}

// DefaultKeyMap returns the bindings: q quits, space adds the configured
// step, left and right arrows subtract and add one.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Step: key.NewBinding(
			key.WithKeys("space"),
			key.WithHelp("space", "increment by step"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "decrement"),
		),
		Increment: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "increment"),
		),
	}
}

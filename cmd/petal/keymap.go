package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left, Right, Up, Down key.Binding
	WordEnd, WordStart    key.Binding
	LineStart, LineEnd    key.Binding

	Insert, Append, Normal key.Binding
	DeleteUnder            key.Binding
	Backspace, Enter       key.Binding

	Save, Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:  key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "left")),
		Right: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "right")),
		Up:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:  key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),

		WordEnd:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "word end")),
		WordStart: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "word start")),
		LineStart: key.NewBinding(key.WithKeys("0", "home"), key.WithHelp("0", "line start")),
		LineEnd:   key.NewBinding(key.WithKeys("$", "end"), key.WithHelp("$", "line end")),

		Insert:      key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert")),
		Append:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "append")),
		Normal:      key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "normal mode")),
		DeleteUnder: key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete")),
		Backspace:   key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Enter:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+q"), key.WithHelp("q", "quit")),
	}
}

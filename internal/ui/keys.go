package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	CycleTheme key.Binding

	// Edit mode: focus moves through inputs, so commands use modifiers.
	Next       key.Binding
	Prev       key.Binding
	AddItem    key.Binding
	RemoveItem key.Binding
	Share      key.Binding
	Export     key.Binding

	// View mode: no inputs, plain letters are free.
	Edit       key.Binding
	ViewShare  key.Binding
	ViewExport key.Binding
	ViewQuit   key.Binding
}

// defaultKeyMap returns the default key bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "theme"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "enter", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		AddItem: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "add item"),
		),
		RemoveItem: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "remove item"),
		),
		Share: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "share link"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "download image"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit / create new"),
		),
		ViewShare: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "share link"),
		),
		ViewExport: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "download image"),
		),
		ViewQuit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

package common

import (
	"github.com/charmbracelet/bubbles/key"
)

// GlobalKeyMap defines the keybindings the launcher itself owns.
//
// Esc is the only reserved key: it always closes the launcher (or the open
// dialog) and a configured action keybind can never shadow it. Navigation
// deliberately avoids letters so that single-letter action keybinds like
// "l" or "s" reach the dispatcher.
type GlobalKeyMap struct {
	// Truly global keys
	Close     key.Binding // Esc - close the launcher (reserved)
	ForceQuit key.Binding // Ctrl+C - quit unconditionally
	Help      key.Binding // ? - show keybindings

	// Button navigation
	Left  key.Binding // ← - previous button in row
	Right key.Binding // → - next button in row
	Up    key.Binding // ↑ - button in row above
	Down  key.Binding // ↓ - button in row below
	Next  key.Binding // Tab - next button, wrapping
	Prev  key.Binding // Shift+Tab - previous button, wrapping

	// Activation
	Activate key.Binding // Enter, Space - trigger the selected button

	// Dialog actions - global because the dialog overlays the menu
	Confirm key.Binding // y, Enter - confirm dialog action
	Cancel  key.Binding // n, Esc - cancel dialog
}

// NewGlobalKeyMap creates a new GlobalKeyMap with default keybindings
func NewGlobalKeyMap() *GlobalKeyMap {
	return &GlobalKeyMap{
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "keybindings"),
		),

		// Navigation
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "row above"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "row below"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next button"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous button"),
		),

		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "activate"),
		),

		// Dialog actions
		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y/enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/esc", "cancel"),
		),
	}
}

// GlobalKeys is the shared global keymap instance
var GlobalKeys = NewGlobalKeyMap()

// ShortHelp returns the keybindings shown in the footer
func (k *GlobalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Close, k.Help}
}

// HelpSection groups related keybindings for the help overlay
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

// HelpSections returns all launcher keybindings grouped for display
func (k *GlobalKeyMap) HelpSections() []HelpSection {
	return []HelpSection{
		{
			Title:    "General",
			Bindings: []key.Binding{k.Close, k.ForceQuit, k.Help},
		},
		{
			Title:    "Navigation",
			Bindings: []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Next, k.Prev, k.Activate},
		},
		{
			Title:    "Dialogs",
			Bindings: []key.Binding{k.Confirm, k.Cancel},
		},
	}
}

package tui

import (
	"github.com/Veraticus/careersync/internal/tui/components"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Form
	Submit    key.Binding
	NextField key.Binding

	// Results
	Download    key.Binding
	Back        key.Binding
	ShowResults key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding

	// Application
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	form := components.DefaultUploadKeyMap()
	results := components.DefaultResultsKeyMap()

	return KeyMap{
		Submit:    form.Submit,
		NextField: form.NextField,

		Download: results.Download,
		Back:     results.Back,
		ShowResults: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("Ctrl+R", "show last results"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "scroll down"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "quit"),
		),
	}
}

// formKeys adapts the key map to the upload form.
type formKeys struct {
	KeyMap
	hasResults bool
}

// ShortHelp returns key bindings for the short help view.
func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k formKeys) FullHelp() [][]key.Binding {
	groups := [][]key.Binding{
		{k.NextField, k.Submit},
		{k.Help, k.Quit},
	}
	if k.hasResults {
		groups[0] = append(groups[0], k.ShowResults)
	}
	return groups
}

// resultsKeys adapts the key map to the results view.
type resultsKeys struct {
	KeyMap
}

// ShortHelp returns key bindings for the short help view.
func (k resultsKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Download, k.Back, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k resultsKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ScrollUp, k.ScrollDown},
		{k.Download, k.Back},
		{k.Help, k.Quit},
	}
}

package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"vaultsearch/internal/i18n"
)

// keyMap holds the bindings shown in the help line
type keyMap struct {
	OpenSearch key.Binding
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Close      key.Binding
	Switch     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap(openKey string, tr *i18n.Translator) keyMap {
	return keyMap{
		OpenSearch: key.NewBinding(
			key.WithKeys(openKey, "/"),
			key.WithHelp(openKey, tr.T(i18n.KeyHelpOpenSearch)),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", tr.T(i18n.KeyHelpNavigate)),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", tr.T(i18n.KeyHelpNavigate)),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", tr.T(i18n.KeyHelpSelect)),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", tr.T(i18n.KeyHelpClose)),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", tr.T(i18n.KeyHelpSwitch)),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", tr.T(i18n.KeyHelpHelp)),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", tr.T(i18n.KeyHelpQuit)),
		),
	}
}

// mainHelp is shown while the overlay is hidden
func (k keyMap) mainHelp() []key.Binding {
	return []key.Binding{k.OpenSearch, k.Switch, k.Help, k.Quit}
}

// overlayHelp is shown while the overlay is visible
func (k keyMap) overlayHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Close}
}

// all lists every binding once, for the help pager
func (k keyMap) all() []key.Binding {
	return []key.Binding{k.OpenSearch, k.Up, k.Down, k.Select, k.Close, k.Switch, k.Help, k.Quit}
}

package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Section     lipgloss.Style
	Overlay     lipgloss.Style
	Input       lipgloss.Style
	InputMarked lipgloss.Style
	Highlight   lipgloss.Style
	SelectionBg lipgloss.Style
	GroupHint   lipgloss.Style
	Selected    lipgloss.Style
	Backdrop    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Input:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		InputMarked: lipgloss.NewStyle().Reverse(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		GroupHint:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true), // green
		Backdrop:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

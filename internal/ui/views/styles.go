package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Dim          lipgloss.Style
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Error        lipgloss.Style
	Status       lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	Scroll       lipgloss.Style
	Cell         lipgloss.Style
	Divisor      lipgloss.Style
	Hovered      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Dim:          lipgloss.NewStyle().Faint(true),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		LabelFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:         lipgloss.NewStyle().Faint(true),
		Main:         lipgloss.NewStyle().Padding(PaddingTop, PaddingLeft),
		Scroll:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Cell:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Divisor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("78")), // green
		Hovered: lipgloss.NewStyle().
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("214")). // yellow
			Bold(true),
	}
}

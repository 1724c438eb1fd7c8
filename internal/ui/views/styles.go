package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Label         lipgloss.Style
	LabelFocused  lipgloss.Style
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
	Dropdown      lipgloss.Style
	Item          lipgloss.Style
	ItemHighlight lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusError   lipgloss.Style
	Help          lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		LabelFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		Item:          lipgloss.NewStyle().Padding(0, 1),
		ItemHighlight: lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("226")).Background(lipgloss.Color("238")).Bold(true),
		Dim:           lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:          lipgloss.NewStyle().Faint(true),
	}
}

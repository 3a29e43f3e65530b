// Package styles holds the shared theme palette and the application-level
// styles for the demo form around the dropdown widgets.
package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds all the UI styles
type Styles struct {
	// Form chrome
	Title      lipgloss.Style
	FieldLabel lipgloss.Style

	// Triggers
	Trigger        lipgloss.Style
	TriggerFocused lipgloss.Style
	TriggerOpen    lipgloss.Style
	TriggerValue   lipgloss.Style
	TriggerEmpty   lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with the Catppuccin Macchiato theme
// and the given accent color for focused elements.
func New(accent lipgloss.Color) *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		FieldLabel: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true),

		Trigger: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		TriggerFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),

		TriggerOpen: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Lavender).
			Padding(0, 1),

		TriggerValue: lipgloss.NewStyle().
			Foreground(Text),

		TriggerEmpty: lipgloss.NewStyle().
			Foreground(Overlay0).
			Italic(true),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(accent).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),
	}
}

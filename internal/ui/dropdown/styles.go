package dropdown

import (
	"github.com/charmbracelet/lipgloss"

	"droplist/internal/ui/styles"
)

// Styles holds all panel-specific styles
type Styles struct {
	// Panel is the bordered panel container style
	Panel lipgloss.Style
	// Filter is the filter input line style
	Filter lipgloss.Style
	// Option is the default option row style
	Option lipgloss.Style
	// OptionFocused is the focused option row style
	OptionFocused lipgloss.Style
	// OptionDisabled is the disabled option row style
	OptionDisabled lipgloss.Style
	// Match is the style for the matched label substring
	Match lipgloss.Style
	// Mark is the selected-value indicator style
	Mark lipgloss.Style
	// Placeholder is the "no results" row style
	Placeholder lipgloss.Style
	// Footer is the key-hint footer style
	Footer lipgloss.Style
}

// DefaultStyles creates a Styles instance using the shared theme palette.
func DefaultStyles() *Styles {
	return &Styles{
		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.Surface2).
			Background(styles.Base).
			Padding(0, 1),

		Filter: lipgloss.NewStyle().
			Foreground(styles.Text).
			Background(styles.Surface0),

		Option: lipgloss.NewStyle().
			Foreground(styles.Text),

		OptionFocused: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		OptionDisabled: lipgloss.NewStyle().
			Foreground(styles.Overlay0),

		Match: lipgloss.NewStyle().
			Foreground(styles.Yellow).
			Bold(true).
			Underline(true),

		Mark: lipgloss.NewStyle().
			Foreground(styles.Green),

		Placeholder: lipgloss.NewStyle().
			Foreground(styles.Overlay1).
			Italic(true),

		Footer: lipgloss.NewStyle().
			Foreground(styles.Subtext0),
	}
}

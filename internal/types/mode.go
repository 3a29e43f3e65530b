// Package types contains shared types used across the application.
package types

// Mode represents the current interaction mode of the demo form.
type Mode int

const (
	// ModeForm is the default mode: focus moves between trigger fields.
	ModeForm Mode = iota
	// ModeOverlay is active while a dropdown panel is open.
	ModeOverlay
	// ModeFilter is active while a panel's filter input owns the keyboard.
	ModeFilter
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeForm:
		return "FORM"
	case ModeOverlay:
		return "SELECT"
	case ModeFilter:
		return "FILTER"
	default:
		return "UNKNOWN"
	}
}

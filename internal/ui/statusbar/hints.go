package statusbar

import "droplist/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeForm:
		return "j/k: fields  Enter: open  q: quit"
	case types.ModeOverlay:
		return "j/k: options  Enter: select  /: filter  Esc: close"
	case types.ModeFilter:
		return "Type to filter  Enter: accept  Esc: clear"
	default:
		return ""
	}
}

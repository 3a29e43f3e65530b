package dropdown

import "droplist/internal/domain"

// OpenedMsg is emitted once a dropdown has finished its opening transition.
// Hosts and tests can wait on it to know the panel is visible.
type OpenedMsg struct {
	Owner string
}

// ClosedMsg is emitted whenever a dropdown closes, regardless of the
// closing path (escape, outside click, selection auto-close, or the
// registry closing it on behalf of another instance).
type ClosedMsg struct {
	Owner string
}

// SelectMsg is emitted for every accepted select, including in passive
// mode where the dropdown does not touch its own selection value.
type SelectMsg struct {
	Owner  string
	Option domain.Option
}

// ChangedMsg carries the selection values after a mutation. It is never
// emitted in passive mode.
type ChangedMsg struct {
	Owner  string
	Values []any
}

// RestoreFocusMsg asks the host to return keyboard focus to the element
// that held it before the dropdown opened. It is delivered through the
// event loop so the host handles it after its next render commit.
type RestoreFocusMsg struct {
	Target string
}

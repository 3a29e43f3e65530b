package domain

// Selection is the bound value of a dropdown: a single value, or an ordered
// sequence of values in multiple mode. It is mutated only through Toggle
// and Clear.
type Selection struct {
	multiple bool
	values   []any
}

// NewSelection creates an empty selection. In multiple mode the selection
// holds an ordered sequence; otherwise it holds at most one value.
func NewSelection(multiple bool) *Selection {
	return &Selection{multiple: multiple}
}

// Multiple reports whether the selection holds a sequence of values.
func (s *Selection) Multiple() bool {
	return s.multiple
}

// Toggle flips membership of v. In multiple mode v is appended when absent
// and removed when present, preserving the order of the remaining values.
// In single mode toggling the current value clears the selection; any other
// value replaces it.
func (s *Selection) Toggle(v any) {
	if s.multiple {
		for i, existing := range s.values {
			if existing == v {
				s.values = append(s.values[:i], s.values[i+1:]...)
				return
			}
		}
		s.values = append(s.values, v)
		return
	}

	if len(s.values) == 1 && s.values[0] == v {
		s.values = nil
		return
	}
	s.values = []any{v}
}

// Contains reports whether v is currently selected.
func (s *Selection) Contains(v any) bool {
	for _, existing := range s.values {
		if existing == v {
			return true
		}
	}
	return false
}

// Value returns the single-mode value and whether one is set. In multiple
// mode it returns the first selected value.
func (s *Selection) Value() (any, bool) {
	if len(s.values) == 0 {
		return nil, false
	}
	return s.values[0], true
}

// Values returns a copy of the selected values in selection order.
func (s *Selection) Values() []any {
	out := make([]any, len(s.values))
	copy(out, s.values)
	return out
}

// Clear removes all selected values.
func (s *Selection) Clear() {
	s.values = nil
}

// Len returns the number of selected values.
func (s *Selection) Len() int {
	return len(s.values)
}

// Package domain contains the core types for dropdown selection: options,
// match spans for filter highlighting, and selection values.
package domain

// MatchSpan marks a positional substring of an option label (byte offsets).
// It exists purely for presentational highlighting of filter matches and
// never affects selection semantics.
type MatchSpan struct {
	Start int
	Len   int
}

// Option is a single selectable entry in a dropdown. Values must be
// comparable; they are compared with == when toggling selection membership.
type Option struct {
	Value    any
	Label    string
	Disabled bool
	Match    *MatchSpan
}

// NewOption creates an enabled option with the given value and label.
func NewOption(value any, label string) Option {
	return Option{Value: value, Label: label}
}

// WithDisabled returns a copy of the option with the disabled flag set.
func (o Option) WithDisabled() Option {
	o.Disabled = true
	return o
}

// WithMatch returns a copy of the option carrying a match span clamped to
// the label bounds. Spans that fall entirely outside the label, or have a
// non-positive length after clamping, clear the span instead.
func (o Option) WithMatch(start, length int) Option {
	if start < 0 {
		length += start
		start = 0
	}
	if start >= len(o.Label) || length <= 0 {
		o.Match = nil
		return o
	}
	if start+length > len(o.Label) {
		length = len(o.Label) - start
	}
	o.Match = &MatchSpan{Start: start, Len: length}
	return o
}

// SplitLabel returns the label split into pre-match, matched, and post-match
// substrings. Without a match span the whole label is returned as pre.
func (o Option) SplitLabel() (pre, match, post string) {
	if o.Match == nil {
		return o.Label, "", ""
	}
	end := o.Match.Start + o.Match.Len
	return o.Label[:o.Match.Start], o.Label[o.Match.Start:end], o.Label[end:]
}

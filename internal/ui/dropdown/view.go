package dropdown

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"droplist/internal/domain"
)

const (
	minPanelWidth = 16
	ellipsis      = "…"
)

// View renders the panel. Closed dropdowns render nothing; the host
// composites the open panel above or below the trigger per Placement.
func (m *Model) View() string {
	if !m.open {
		return ""
	}

	width := m.placement.Width
	if width < minPanelWidth {
		width = minPanelWidth
	}
	contentWidth := width - 4 // borders and padding
	if contentWidth < 8 {
		contentWidth = 8
	}

	var lines []string

	if m.filterShown() {
		lines = append(lines, m.styles.Filter.Width(contentWidth).Render(m.filter.View()))
	}

	if len(m.visible) == 0 {
		lines = append(lines, m.styles.Placeholder.Render(m.cfg.Placeholder))
	} else {
		rows := m.maxRows()
		end := m.scroll + rows
		if end > len(m.visible) {
			end = len(m.visible)
		}
		for i := m.scroll; i < end; i++ {
			lines = append(lines, m.renderRow(i, contentWidth))
		}
	}

	lines = append(lines, m.styles.Footer.Render(m.footerHints()))

	content := strings.Join(lines, "\n")
	return m.styles.Panel.Width(width - 2).Render(content)
}

// panelRect returns the screen region the rendered panel occupies,
// accounting for direction: panels opening up extend above the anchor.
func (m *Model) panelRect() Rect {
	height := lipgloss.Height(m.View())
	width := m.placement.Width
	if width < minPanelWidth {
		width = minPanelWidth
	}

	rect := Rect{X: m.placement.X, Width: width, Height: height}
	if m.placement.Direction == Up {
		rect.Y = m.placement.Y - height
	} else {
		rect.Y = m.placement.Y
	}
	return rect
}

func (m *Model) renderRow(i, width int) string {
	opt := m.visible[i]

	cursor := "  "
	if i == m.focusIndex {
		cursor = "▸ "
	}

	mark := "  "
	if !m.cfg.Passive && m.selection.Contains(opt.Value) {
		mark = m.styles.Mark.Render("●") + " "
	}

	base := m.styles.Option
	if opt.Disabled {
		base = m.styles.OptionDisabled
	} else if i == m.focusIndex {
		base = m.styles.OptionFocused
	}

	labelWidth := width - 4 // cursor and mark cells
	if labelWidth < 4 {
		labelWidth = 4
	}
	return cursor + mark + m.renderLabel(opt, labelWidth, base)
}

// renderLabel truncates the label to the row width and, when a match span
// is present, splits it into pre/match/post substrings so the matched run
// can be emphasized. Disabled rows skip the emphasis.
func (m *Model) renderLabel(opt domain.Option, width int, base lipgloss.Style) string {
	label := runewidth.Truncate(opt.Label, width, ellipsis)
	if opt.Disabled || opt.Match == nil {
		return base.Render(label)
	}

	// Re-clamp the span when truncation shortened the label; the span
	// must not bleed into the ellipsis.
	span := *opt.Match
	limit := len(label)
	if label != opt.Label {
		limit = len(label) - len(ellipsis)
	}
	if span.Start >= limit {
		return base.Render(label)
	}
	if span.Start+span.Len > limit {
		span.Len = limit - span.Start
	}

	pre := label[:span.Start]
	match := label[span.Start : span.Start+span.Len]
	post := label[span.Start+span.Len:]
	return base.Render(pre) + m.styles.Match.Render(match) + base.Render(post)
}

func (m *Model) footerHints() string {
	if m.cfg.Multiple {
		return "Enter: toggle • a: all • /: filter • Esc: close"
	}
	return "Enter: select • /: filter • Esc: close"
}

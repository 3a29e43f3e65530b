package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"droplist/internal/ui/dropdown"
	"droplist/internal/ui/statusbar"
	"droplist/internal/ui/toast"
)

// View implements tea.Model. The open panel, if any, is composited above
// or below its trigger field per the computed placement direction.
func (m Model) View() string {
	title := m.styles.Title.Render("droplist demo")

	var blocks []string
	open := m.openDropdown()

	for i, f := range m.fields {
		block := m.renderField(i, f)

		if open == f.dd {
			panel := lipgloss.NewStyle().MarginLeft(formLeft).Render(open.View())
			if open.Placement().Direction == dropdown.Up {
				block = lipgloss.JoinVertical(lipgloss.Left, panel, block)
			} else {
				block = lipgloss.JoinVertical(lipgloss.Left, block, panel)
			}
		}

		blocks = append(blocks, block)
	}

	form := lipgloss.JoinVertical(lipgloss.Left, blocks...)

	sb := statusbar.New(m.Mode(), m.width, m.styles)
	view := lipgloss.JoinVertical(lipgloss.Left, title, form, sb.Render())

	if len(m.toasts) > 0 {
		toastView := toast.New(m.styles).Render(m.toasts, m.width)
		if toastView != "" {
			view = lipgloss.JoinVertical(lipgloss.Left, view, toastView)
		}
	}

	return view
}

func (m Model) renderField(index int, f *field) string {
	label := m.styles.FieldLabel.Render(f.label)

	triggerStyle := m.styles.Trigger
	if f.dd.IsOpen() {
		triggerStyle = m.styles.TriggerOpen
	} else if index == m.focus {
		triggerStyle = m.styles.TriggerFocused
	}

	summary := m.summarize(f)
	trigger := triggerStyle.Width(triggerWidth - 2).Render(summary)

	row := lipgloss.JoinHorizontal(lipgloss.Center, trigger, "  ", label)
	return lipgloss.NewStyle().MarginLeft(formLeft).Render(row)
}

// summarize renders the trigger's current value: the selected label in
// single mode, a count in multiple mode, or a muted placeholder.
func (m Model) summarize(f *field) string {
	sel := f.dd.Selection()

	if sel.Multiple() {
		if sel.Len() == 0 {
			return m.styles.TriggerEmpty.Render("Select…")
		}
		var names []string
		for _, v := range sel.Values() {
			names = append(names, m.labelFor(f, v))
		}
		if len(names) > 2 {
			return m.styles.TriggerValue.Render(
				fmt.Sprintf("%s +%d more", strings.Join(names[:2], ", "), len(names)-2))
		}
		return m.styles.TriggerValue.Render(strings.Join(names, ", "))
	}

	v, ok := sel.Value()
	if !ok {
		return m.styles.TriggerEmpty.Render("Select…")
	}
	return m.styles.TriggerValue.Render(m.labelFor(f, v))
}

func (m Model) labelFor(f *field, value any) string {
	for _, opt := range f.dd.Options() {
		if opt.Value == value {
			return opt.Label
		}
	}
	return fmt.Sprintf("%v", value)
}

package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"droplist/internal/config"
	"droplist/internal/types"
	"droplist/internal/ui/dropdown"
)

func newTestModel() Model {
	return NewModel(config.DefaultConfig())
}

func TestNewModel(t *testing.T) {
	m := newTestModel()

	require.Len(t, m.fields, 3)
	assert.Equal(t, "priority", m.fields[0].id)
	assert.Equal(t, "assignee", m.fields[1].id)
	assert.Equal(t, "labels", m.fields[2].id)
	assert.Equal(t, types.ModeForm, m.Mode())
}

func TestModel_FieldNavigation(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = next.(Model)
	assert.Equal(t, 1, m.focus)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	m = next.(Model)
	assert.Equal(t, 0, m.focus)

	// Clamped at the first field
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	m = next.(Model)
	assert.Equal(t, 0, m.focus)
}

func TestModel_EnterOpensFocusedDropdown(t *testing.T) {
	m := newTestModel()
	m.height = 40

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	require.NotNil(t, cmd)
	assert.True(t, m.fields[0].dd.IsOpen())
	assert.Equal(t, types.ModeOverlay, m.Mode())
}

func TestModel_OpeningOneClosesAnother(t *testing.T) {
	m := newTestModel()
	m.height = 40

	m.fields[1].dd.Open(m.triggerRect(1), 40, "assignee")
	require.True(t, m.fields[1].dd.IsOpen())

	m.fields[0].dd.Open(m.triggerRect(0), 40, "priority")

	assert.True(t, m.fields[0].dd.IsOpen())
	assert.False(t, m.fields[1].dd.IsOpen(), "registry closes the other overlay")
	assert.Equal(t, 1, m.registry.OpenCount())
}

func TestModel_EscapeClosesAndRestoresFocus(t *testing.T) {
	m := newTestModel()
	m.height = 40
	m.focus = 1

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.True(t, m.fields[1].dd.IsOpen())

	// Move field focus away to show restoration actually targets the
	// field recorded at open time.
	m.focus = 0

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	assert.False(t, m.fields[1].dd.IsOpen())

	// Deliver the emitted messages back into the model, as the runtime
	// would.
	for _, msg := range collectMsgs(cmd) {
		next, _ = m.Update(msg)
		m = next.(Model)
	}

	assert.Equal(t, 1, m.focus, "expected focus restored to the opening field")
	assert.Equal(t, types.ModeForm, m.Mode())
}

func TestModel_ChangedMsgRaisesToast(t *testing.T) {
	m := newTestModel()

	next, cmd := m.Update(dropdown.ChangedMsg{Owner: "labels", Values: []any{"bug", "docs"}})
	m = next.(Model)

	require.Len(t, m.toasts, 1)
	assert.Contains(t, m.toasts[0].Message, "labels")
	assert.Contains(t, m.toasts[0].Message, "2 selected")
	assert.NotNil(t, cmd, "expected expiry tick command")
}

func TestModel_ClearedSelectionToast(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(dropdown.ChangedMsg{Owner: "priority", Values: nil})
	m = next.(Model)

	require.Len(t, m.toasts, 1)
	assert.Contains(t, m.toasts[0].Message, "cleared")
}

func TestPruneToasts(t *testing.T) {
	now := time.Now()
	toasts := []types.Toast{
		{Message: "stale", Expires: now.Add(-time.Second)},
		{Message: "fresh", Expires: now.Add(time.Second)},
	}

	alive := pruneToasts(toasts, now)

	require.Len(t, alive, 1)
	assert.Equal(t, "fresh", alive[0].Message)
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	m = next.(Model)

	assert.Equal(t, 100, m.width)
	assert.Equal(t, 50, m.height)
	assert.Equal(t, 50, m.viewportHeight())
}

func TestModel_ViewportHeightDefault(t *testing.T) {
	m := newTestModel()
	assert.Equal(t, 24, m.viewportHeight())
}

func TestModel_View(t *testing.T) {
	m := newTestModel()
	m.width = 100
	m.height = 40

	view := m.View()

	for _, label := range []string{"Priority", "Assignee", "Labels"} {
		assert.Contains(t, view, label)
	}
	assert.Contains(t, view, "droplist demo")
	assert.Contains(t, view, "FORM")
}

func TestModel_ViewWithOpenOverlay(t *testing.T) {
	m := newTestModel()
	m.width = 100
	m.height = 40

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	view := m.View()
	assert.Contains(t, view, "Critical", "expected open panel options in the view")
	assert.Contains(t, view, "SELECT")
}

func TestModel_QuitKeys(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

// collectMsgs executes a command tree and flattens batches into messages.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestModel_SummaryShowsSelection(t *testing.T) {
	m := newTestModel()
	m.width = 100
	m.height = 40

	m.fields[0].dd.Selection().Toggle(1) // "High"

	view := m.View()
	assert.True(t, strings.Contains(view, "High"))
}

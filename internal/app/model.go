// Package app wires the demo form: three dropdown fields sharing one
// registry, a status bar, and toast feedback for selection changes.
package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"droplist/internal/config"
	"droplist/internal/domain"
	"droplist/internal/types"
	"droplist/internal/ui/dropdown"
	"droplist/internal/ui/styles"
)

const (
	formLeft     = 2
	formTop      = 2 // title and its margin
	triggerWidth = 36
	fieldHeight  = 3 // bordered trigger box
)

// expireToastsMsg prunes toasts past their expiry.
type expireToastsMsg struct{}

// field pairs a dropdown with its form label and focus-scoping id.
type field struct {
	id    string
	label string
	dd    *dropdown.Model
}

// Model is the root demo model.
type Model struct {
	cfg      *config.Config
	styles   *styles.Styles
	registry *dropdown.Registry

	fields []*field
	focus  int

	width  int
	height int
	toasts []types.Toast
}

// NewModel creates the demo form with a single-select, a filterable
// single-select, and a multi-select field, all registered with one
// registry so opening one closes the others.
func NewModel(cfg *config.Config) Model {
	registry := dropdown.NewRegistry()

	priority := dropdown.New(
		[]domain.Option{
			domain.NewOption(0, "Critical"),
			domain.NewOption(1, "High"),
			domain.NewOption(2, "Medium"),
			domain.NewOption(3, "Low"),
			domain.NewOption(4, "Backlog"),
		},
		dropdown.Config{
			Owner:          "priority",
			StayOpen:       cfg.Select.StayOpen,
			NoRefocus:      cfg.Select.NoRefocus,
			Placeholder:    cfg.Select.Placeholder,
			MaxVisibleRows: cfg.UI.MaxVisibleRows,
		},
		registry,
	)

	assignee := dropdown.New(
		[]domain.Option{
			domain.NewOption("ada", "Ada Lovelace"),
			domain.NewOption("grace", "Grace Hopper"),
			domain.NewOption("edsger", "Edsger Dijkstra"),
			domain.NewOption("barbara", "Barbara Liskov"),
			domain.NewOption("donald", "Donald Knuth"),
			domain.NewOption("nobody", "Unassigned"),
		},
		dropdown.Config{
			Owner:          "assignee",
			StayOpen:       cfg.Select.StayOpen,
			NoRefocus:      cfg.Select.NoRefocus,
			Placeholder:    cfg.Select.Placeholder,
			MaxVisibleRows: cfg.UI.MaxVisibleRows,
		},
		registry,
	)

	labels := dropdown.New(
		[]domain.Option{
			domain.NewOption("bug", "bug"),
			domain.NewOption("feature", "feature"),
			domain.NewOption("docs", "docs"),
			domain.NewOption("archived", "archived").WithDisabled(),
			domain.NewOption("urgent", "urgent"),
		},
		dropdown.Config{
			Owner:          "labels",
			Multiple:       true,
			NoRefocus:      cfg.Select.NoRefocus,
			Placeholder:    cfg.Select.Placeholder,
			MaxVisibleRows: cfg.UI.MaxVisibleRows,
		},
		registry,
	)

	return Model{
		cfg:      cfg,
		styles:   styles.New(styles.AccentColor(cfg.UI.Accent)),
		registry: registry,
		fields: []*field{
			{id: "priority", label: "Priority", dd: priority},
			{id: "assignee", label: "Assignee", dd: assignee},
			{id: "labels", label: "Labels", dd: labels},
		},
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Mode returns the current interaction mode for the status bar.
func (m Model) Mode() types.Mode {
	if dd := m.openDropdown(); dd != nil {
		if dd.Filtering() {
			return types.ModeFilter
		}
		return types.ModeOverlay
	}
	return types.ModeForm
}

// openDropdown returns the currently open dropdown, if any. The registry
// guarantees there is at most one.
func (m Model) openDropdown() *dropdown.Model {
	for _, f := range m.fields {
		if f.dd.IsOpen() {
			return f.dd
		}
	}
	return nil
}

// triggerRect computes the screen region of a field's trigger box.
func (m Model) triggerRect(index int) dropdown.Rect {
	return dropdown.Rect{
		X:      formLeft,
		Y:      formTop + index*fieldHeight,
		Width:  triggerWidth,
		Height: fieldHeight,
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case expireToastsMsg:
		m.toasts = pruneToasts(m.toasts, time.Now())
		return m, nil

	case dropdown.ChangedMsg:
		return m.handleChanged(msg)

	case dropdown.RestoreFocusMsg:
		// Delivered after the closing render; return focus to the
		// trigger field that opened the overlay.
		for i, f := range m.fields {
			if f.id == msg.Target {
				m.focus = i
				break
			}
		}
		return m, nil

	case dropdown.OpenedMsg, dropdown.ClosedMsg, dropdown.SelectMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case tea.MouseMsg:
		if dd := m.openDropdown(); dd != nil {
			_, cmd := dd.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// An open overlay traps the keyboard
	if dd := m.openDropdown(); dd != nil {
		_, cmd := dd.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		if m.focus < len(m.fields)-1 {
			m.focus++
		}
		return m, nil

	case "k", "up":
		if m.focus > 0 {
			m.focus--
		}
		return m, nil

	case "enter", " ", "l":
		f := m.fields[m.focus]
		return m, f.dd.Open(m.triggerRect(m.focus), m.viewportHeight(), f.id)
	}

	return m, nil
}

func (m Model) handleChanged(msg dropdown.ChangedMsg) (tea.Model, tea.Cmd) {
	message := fmt.Sprintf("%s: cleared", msg.Owner)
	if len(msg.Values) > 0 {
		message = fmt.Sprintf("%s: %d selected", msg.Owner, len(msg.Values))
	}

	m.toasts = append(m.toasts, types.Toast{
		Level:   types.ToastInfo,
		Message: message,
		Expires: time.Now().Add(3 * time.Second),
	})

	return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return expireToastsMsg{}
	})
}

// viewportHeight returns the height used for placement; before the first
// WindowSizeMsg a sane default keeps placement math valid.
func (m Model) viewportHeight() int {
	if m.height > 0 {
		return m.height
	}
	return 24
}

func pruneToasts(toasts []types.Toast, now time.Time) []types.Toast {
	var alive []types.Toast
	for _, t := range toasts {
		if t.Expires.After(now) {
			alive = append(alive, t)
		}
	}
	return alive
}

// Package dropdown implements a select overlay anchored to a trigger
// element: a floating panel of options with keyboard focus trapping,
// single/multiple selection, fuzzy filtering, and placement above or below
// the trigger depending on viewport position. A Registry keeps at most one
// panel open at a time.
package dropdown

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"droplist/internal/domain"
)

const (
	defaultMaxVisibleRows = 8
	defaultPlaceholder    = "No results"
)

// Config carries the mode flags of a dropdown instance.
type Config struct {
	// Owner identifies the instance in emitted messages and scopes focus
	// restoration.
	Owner string
	// Multiple selects into an ordered sequence and keeps the panel open
	// after each toggle.
	Multiple bool
	// Passive emits SelectMsg but never mutates the bound selection; the
	// caller owns the value and, for single selects, triggers the close.
	Passive bool
	// StayOpen suppresses the single-mode auto-close after a selection.
	StayOpen bool
	// NoRefocus suppresses focus restoration to the pre-open element.
	NoRefocus bool
	// Placeholder is the row shown when no options match the filter.
	Placeholder string
	// MaxVisibleRows caps the option rows rendered at once.
	MaxVisibleRows int
}

// Model is the overlay select controller. It implements tea.Model and the
// registry Instance interface. The only states are closed and open;
// every closing path (escape, outside click, selection auto-close,
// registry eviction) is idempotent.
type Model struct {
	cfg      Config
	keys     KeyMap
	styles   *Styles
	registry *Registry

	options   []domain.Option
	visible   []domain.Option
	selection *domain.Selection

	open       bool
	focusIndex int
	scroll     int
	priorFocus string
	trigger    Rect
	placement  Placement

	filtering bool
	filter    textinput.Model
}

// New creates a closed dropdown over the given options and registers it
// with reg. Call reg.Unregister on teardown.
func New(options []domain.Option, cfg Config, reg *Registry) *Model {
	if cfg.MaxVisibleRows <= 0 {
		cfg.MaxVisibleRows = defaultMaxVisibleRows
	}
	if cfg.Placeholder == "" {
		cfg.Placeholder = defaultPlaceholder
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter..."
	ti.CharLimit = 64

	m := &Model{
		cfg:        cfg,
		keys:       DefaultKeyMap,
		styles:     DefaultStyles(),
		registry:   reg,
		selection:  domain.NewSelection(cfg.Multiple),
		focusIndex: -1,
		filter:     ti,
	}
	m.SetOptions(options)

	if reg != nil {
		reg.Register(m)
	}
	return m
}

// Owner returns the instance identifier used in emitted messages.
func (m *Model) Owner() string {
	return m.cfg.Owner
}

// IsOpen reports whether the panel is currently open.
func (m *Model) IsOpen() bool {
	return m.open
}

// Selection returns the bound selection value.
func (m *Model) Selection() *domain.Selection {
	return m.selection
}

// Options returns the full option list as supplied.
func (m *Model) Options() []domain.Option {
	return m.options
}

// VisibleOptions returns the options surviving the current filter, in
// display order.
func (m *Model) VisibleOptions() []domain.Option {
	return m.visible
}

// Placement returns the geometry computed at the last open.
func (m *Model) Placement() Placement {
	return m.placement
}

// SetOptions replaces the option list and re-applies the current filter.
func (m *Model) SetOptions(options []domain.Option) {
	m.options = make([]domain.Option, len(options))
	copy(m.options, options)
	m.applyFilter()
}

// Open opens the panel anchored to trigger, closing every other open
// instance in the registry first. priorFocus names the element holding
// focus before the open, for restore-on-close. The returned command
// carries the close notifications of evicted instances plus an OpenedMsg
// emitted once the opening transition is done.
func (m *Model) Open(trigger Rect, viewportHeight int, priorFocus string) tea.Cmd {
	var cmds []tea.Cmd
	if m.registry != nil {
		if cmd := m.registry.CloseAllExcept(m); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	m.priorFocus = priorFocus
	m.trigger = trigger
	m.placement = ComputePlacement(trigger, viewportHeight)
	m.open = true
	m.filtering = false
	m.filter.SetValue("")
	m.applyFilter()
	m.FocusFirstOrSelected(false)

	owner := m.cfg.Owner
	cmds = append(cmds, func() tea.Msg { return OpenedMsg{Owner: owner} })
	return tea.Batch(cmds...)
}

// Close closes the panel. It is idempotent: closing an already-closed
// dropdown returns nil. The close notification is emitted immediately;
// focus restoration is delivered as a separate message the host handles
// after its next render, unless suppressed by NoRefocus.
func (m *Model) Close() tea.Cmd {
	if !m.open {
		return nil
	}
	m.open = false
	m.filtering = false
	m.filter.Blur()

	owner := m.cfg.Owner
	cmds := []tea.Cmd{func() tea.Msg { return ClosedMsg{Owner: owner} }}
	if !m.cfg.NoRefocus && m.priorFocus != "" {
		target := m.priorFocus
		cmds = append(cmds, func() tea.Msg { return RestoreFocusMsg{Target: target} })
	}
	return tea.Batch(cmds...)
}

// Select applies a selection to opt. Disabled options are silently
// ignored. A SelectMsg is always emitted for accepted selects; in passive
// mode that is all that happens. Otherwise the selection value is mutated
// first and the ChangedMsg carries the post-mutation values. Single mode
// auto-closes afterwards unless StayOpen is set.
func (m *Model) Select(opt domain.Option) tea.Cmd {
	if opt.Disabled {
		return nil
	}

	owner := m.cfg.Owner
	cmds := []tea.Cmd{func() tea.Msg { return SelectMsg{Owner: owner, Option: opt} }}

	if m.cfg.Passive {
		return tea.Batch(cmds...)
	}

	m.selection.Toggle(opt.Value)
	values := m.selection.Values()
	cmds = append(cmds, func() tea.Msg { return ChangedMsg{Owner: owner, Values: values} })

	if !m.cfg.Multiple && !m.cfg.StayOpen {
		if cmd := m.Close(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// SelectAll applies Select to every currently unselected, non-disabled
// option in listed order. Only meaningful in multiple mode; a no-op
// otherwise.
func (m *Model) SelectAll() tea.Cmd {
	if !m.cfg.Multiple {
		return nil
	}
	var cmds []tea.Cmd
	for _, opt := range m.options {
		if opt.Disabled || m.selection.Contains(opt.Value) {
			continue
		}
		if cmd := m.Select(opt); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// FocusableOptions returns the non-disabled options currently visible.
func (m *Model) FocusableOptions() []domain.Option {
	out := make([]domain.Option, 0, len(m.visible))
	for _, opt := range m.visible {
		if !opt.Disabled {
			out = append(out, opt)
		}
	}
	return out
}

// FocusFirstOrSelected focuses the first selected option if any, otherwise
// the first focusable one. With last set it targets the last focusable
// option instead, for entry via upward navigation.
func (m *Model) FocusFirstOrSelected(last bool) {
	m.focusIndex = -1

	if !m.cfg.Passive {
		for i, opt := range m.visible {
			if !opt.Disabled && m.selection.Contains(opt.Value) {
				m.focusIndex = i
				m.ensureVisible()
				return
			}
		}
	}

	if last {
		for i := len(m.visible) - 1; i >= 0; i-- {
			if !m.visible[i].Disabled {
				m.focusIndex = i
				break
			}
		}
	} else {
		for i, opt := range m.visible {
			if !opt.Disabled {
				m.focusIndex = i
				break
			}
		}
	}
	m.ensureVisible()
}

// Focused returns the option under the focus cursor.
func (m *Model) Focused() (domain.Option, bool) {
	if m.focusIndex < 0 || m.focusIndex >= len(m.visible) {
		return domain.Option{}, false
	}
	return m.visible[m.focusIndex], true
}

// MoveFocus moves the focus cursor by delta rows, skipping disabled
// options and clamping at the panel edges.
func (m *Model) MoveFocus(delta int) {
	i := m.focusIndex
	for {
		i += delta
		if i < 0 || i >= len(m.visible) {
			return
		}
		if !m.visible[i].Disabled {
			m.focusIndex = i
			m.ensureVisible()
			return
		}
	}
}

// cycleFocus moves the focus cursor with wrap-around, confining tab-order
// to the panel.
func (m *Model) cycleFocus(delta int) {
	n := len(m.visible)
	if n == 0 {
		return
	}
	i := m.focusIndex
	for step := 0; step < n; step++ {
		i = ((i+delta)%n + n) % n
		if !m.visible[i].Disabled {
			m.focusIndex = i
			m.ensureVisible()
			return
		}
	}
}

// Filtering reports whether the filter input currently owns the keyboard.
func (m *Model) Filtering() bool {
	return m.filtering
}

// FilterValue returns the current filter query.
func (m *Model) FilterValue() string {
	return m.filter.Value()
}

// SetFilter sets the filter query programmatically.
func (m *Model) SetFilter(query string) {
	m.filter.SetValue(query)
	m.applyFilter()
	m.FocusFirstOrSelected(false)
}

func (m *Model) applyFilter() {
	m.visible = filterOptions(m.options, m.filter.Value())
	m.scroll = 0
	if m.focusIndex >= len(m.visible) {
		m.focusIndex = len(m.visible) - 1
	}
}

func (m *Model) ensureVisible() {
	rows := m.maxRows()
	if m.focusIndex < 0 {
		m.scroll = 0
		return
	}
	if m.focusIndex < m.scroll {
		m.scroll = m.focusIndex
	}
	if m.focusIndex >= m.scroll+rows {
		m.scroll = m.focusIndex - rows + 1
	}
}

// maxRows returns the option rows that fit the placement height budget.
func (m *Model) maxRows() int {
	rows := m.cfg.MaxVisibleRows
	if m.placement.MaxHeight > 0 {
		avail := m.placement.MaxHeight - 3 // borders and footer
		if m.filterShown() {
			avail--
		}
		if avail < 1 {
			avail = 1
		}
		if avail < rows {
			rows = avail
		}
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) filterShown() bool {
	return m.filtering || m.filter.Value() != ""
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Messages are only handled while open.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.open {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			return m.updateFiltering(msg)
		}
		return m.updateKeys(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	return m, nil
}

// updateFiltering routes keys while the filter input owns the keyboard.
// Escape clears the filter and returns to the list, Enter accepts it,
// up/down move focus through the filtered options.
func (m *Model) updateFiltering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		m.FocusFirstOrSelected(false)
		return m, nil

	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return m, nil

	case tea.KeyUp:
		m.MoveFocus(-1)
		return m, nil

	case tea.KeyDown:
		m.MoveFocus(1)
		return m, nil
	}

	prev := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != prev {
		m.applyFilter()
		m.FocusFirstOrSelected(false)
	}
	return m, cmd
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		return m, m.Close()

	case key.Matches(msg, m.keys.Up):
		m.MoveFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.MoveFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.cycleFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.cycleFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.SelectAll):
		if m.cfg.Multiple {
			return m, m.SelectAll()
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filter.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Select):
		if opt, ok := m.Focused(); ok {
			return m, m.Select(opt)
		}
		return m, nil
	}

	return m, nil
}

// updateMouse closes on presses landing outside both the panel and the
// trigger recorded at open time. Clicks on the trigger are ignored so the
// open that just happened is not immediately undone. Clicks on an option
// row select it.
func (m *Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	rect := m.panelRect()
	if rect.Contains(msg.X, msg.Y) {
		contentY := msg.Y - rect.Y - 1 // top border
		if m.filterShown() {
			contentY--
		}
		idx := m.scroll + contentY
		if contentY >= 0 && idx < len(m.visible) && idx < m.scroll+m.maxRows() {
			if !m.visible[idx].Disabled {
				m.focusIndex = idx
			}
			return m, m.Select(m.visible[idx])
		}
		return m, nil
	}

	if m.trigger.Contains(msg.X, msg.Y) {
		return m, nil
	}

	return m, m.Close()
}

package autocomplete

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"typeahead/internal/domain"
	"typeahead/internal/logging"
	"typeahead/internal/source"
	"typeahead/internal/ui/services/events"
	"typeahead/internal/ui/services/navigation"
	"typeahead/internal/ui/services/query"
	"typeahead/internal/ui/services/selection"
	"typeahead/internal/ui/views"
)

const maxInputWidth = 60

// Model is one autocomplete instance bound to a text input
type Model struct {
	cfg      Config
	input    textinput.Model
	keys     KeyMap
	styles   *views.Styles
	dropdown *views.Dropdown
	focused  bool

	// Services
	listeners *events.Bus
	nav       *navigation.Service
	query     *query.Service
	selection *selection.Service

	ctx    context.Context
	cancel context.CancelFunc
}

// New binds a fresh text input to cfg.Source
func New(cfg Config) (*Model, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	resolver, err := source.New(cfg.Source, cfg.Transport)
	if err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.Placeholder = cfg.Placeholder
	ti.Prompt = "› "
	ti.Cursor.SetMode(cfg.CursorMode)

	ctx, cancel := context.WithCancel(context.Background())

	styles := views.NewStyles()
	m := &Model{
		cfg:       cfg,
		input:     ti,
		keys:      DefaultKeyMap(),
		styles:    styles,
		dropdown:  views.NewDropdown(styles),
		listeners: events.NewBus(),
		ctx:       ctx,
		cancel:    cancel,
	}
	m.resize(m.dropdown.Width())

	el := &element{m: m}
	m.nav = navigation.NewService(m.listeners)
	m.query = query.NewService(cfg.ID, resolver, m.nav, m.listeners, query.Options{
		MinLength:  cfg.MinLength,
		MaxResults: cfg.MaxResults,
	})
	m.query.SetContext(ctx)
	m.selection = selection.NewService(m.nav, el, m.listeners)
	m.selection.SetInvalidateFunction(m.query.Invalidate)

	if cfg.OnOpen != nil {
		m.nav.SetOpenHandler(func(items []domain.Item) {
			cfg.OnOpen(el, items)
		})
	}
	if cfg.OnSelect != nil {
		m.selection.SetSelectHandler(func(item domain.Item) {
			cfg.OnSelect(el, item)
		})
	}

	m.selection.OnDestroy(func() {
		m.cancel()
		m.focused = false
		m.input.Blur()
		m.dropdown.Release()
		m.listeners.Reset()
	})

	logging.Debug("instance bound", "id", cfg.ID, "source", cfg.Source.Kind.String())
	return m, nil
}

// ID returns the bind target id
func (m *Model) ID() string {
	return m.cfg.ID
}

// Label returns the display label
func (m *Model) Label() string {
	return m.cfg.Label
}

// Value returns the current input text
func (m *Model) Value() string {
	return m.input.Value()
}

// Element returns the bound element
func (m *Model) Element() domain.Element {
	return &element{m: m}
}

// State returns a copy of the navigation state
func (m *Model) State() navigation.State {
	return m.nav.State()
}

// Keys returns the key bindings for help rendering
func (m *Model) Keys() KeyMap {
	return m.keys
}

// Listeners exposes the instance's internal listener bus
func (m *Model) Listeners() events.EventBus {
	return m.listeners
}

// Focused reports whether the input has focus
func (m *Model) Focused() bool {
	return m.focused
}

// Destroyed reports whether the instance has been torn down
func (m *Model) Destroyed() bool {
	return m.selection.Destroyed()
}

// OnDestroy registers fn to run once at teardown
func (m *Model) OnDestroy(fn func()) {
	m.selection.OnDestroy(fn)
}

// Focus gives the input focus. With MinLength 0 the full set is requested.
func (m *Model) Focus() tea.Cmd {
	if m.Destroyed() {
		return nil
	}
	m.focused = true
	return tea.Batch(m.input.Focus(), m.query.OnFocus())
}

// Blur removes focus and closes the list
func (m *Model) Blur() {
	if m.Destroyed() {
		return
	}
	m.focused = false
	m.input.Blur()
	m.selection.Close()
}

// Close hides the list and drops pending results
func (m *Model) Close() {
	m.selection.Close()
}

// Select commits the item at index of the open list
func (m *Model) Select(index int) bool {
	return m.selection.Select(index)
}

// Destroy tears the instance down. Safe to call repeatedly.
func (m *Model) Destroy() {
	m.selection.Destroy()
}

// Update handles a message addressed to this instance
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.Destroyed() {
		return nil
	}

	switch msg := msg.(type) {
	case query.ResultsMsg:
		if msg.InstanceID == m.cfg.ID && msg.Token == m.query.Token() {
			m.query.Apply(msg)
		}
		return nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width - 4)
		return nil

	case ClickMsg:
		m.handleClick(msg)
		return nil

	case HoverMsg:
		if row := m.rowAt(msg.Y); row >= 0 {
			m.nav.HighlightIndex(row)
		}
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !m.focused {
		return nil
	}

	if m.nav.IsOpen() {
		switch {
		case key.Matches(msg, m.keys.Next):
			m.nav.Navigate(navigation.DirectionDown)
			return nil
		case key.Matches(msg, m.keys.Prev):
			m.nav.Navigate(navigation.DirectionUp)
			return nil
		case key.Matches(msg, m.keys.Confirm):
			m.selection.Confirm()
			return nil
		case key.Matches(msg, m.keys.Cancel):
			m.selection.Close()
			return nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		return tea.Batch(cmd, m.query.OnQuery(after))
	}
	return cmd
}

func (m *Model) handleClick(msg ClickMsg) {
	if msg.Outside {
		m.selection.Close()
		return
	}
	if msg.Y < m.dropdownTop() {
		// label or input box
		return
	}
	if row := m.rowAt(msg.Y); row >= 0 {
		m.selection.Select(row)
		return
	}
	if !m.inDropdown(msg.Y) {
		m.selection.Close()
	}
}

// rowAt maps an instance-relative y to an item index, or -1
func (m *Model) rowAt(y int) int {
	if !m.nav.IsOpen() {
		return navigation.NoHighlight
	}
	m.dropdown.Render(m.nav.State())
	return m.dropdown.RowAt(y - m.dropdownTop())
}

func (m *Model) inDropdown(y int) bool {
	top := m.dropdownTop()
	return m.nav.IsOpen() && y >= top && y < top+m.dropdown.Height()
}

func (m *Model) dropdownTop() int {
	return lipgloss.Height(m.labelView()) + lipgloss.Height(m.inputView())
}

func (m *Model) resize(width int) {
	if width > maxInputWidth {
		width = maxInputWidth
	}
	m.dropdown.SetWidth(width)
	// border, padding and prompt
	m.input.Width = m.dropdown.Width() - 4 - lipgloss.Width(m.input.Prompt) - 1
}

func (m *Model) labelView() string {
	if m.focused {
		return m.styles.LabelFocused.Render(m.cfg.Label)
	}
	return m.styles.Label.Render(m.cfg.Label)
}

func (m *Model) inputView() string {
	style := m.styles.Input
	if m.focused {
		style = m.styles.InputFocused
	}
	return style.Width(m.dropdown.Width() - 2).Render(m.input.View())
}

// View renders label, input and, when open, the suggestion list
func (m *Model) View() string {
	if m.Destroyed() {
		return ""
	}
	parts := []string{m.labelView(), m.inputView()}
	if list := m.dropdown.Render(m.nav.State()); list != "" {
		parts = append(parts, list)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// element adapts the instance's text input to domain.Element
type element struct {
	m *Model
}

func (e *element) ID() string {
	return e.m.cfg.ID
}

func (e *element) Value() string {
	return e.m.input.Value()
}

func (e *element) SetValue(v string) {
	e.m.input.SetValue(v)
	e.m.input.CursorEnd()
}

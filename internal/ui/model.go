package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"typeahead/internal/eventbus"
	"typeahead/internal/logging"
	"typeahead/internal/registry"
	"typeahead/internal/ui/autocomplete"
	"typeahead/internal/ui/services/query"
	"typeahead/internal/ui/views"
)

const (
	title         = "typeahead"
	statusTimeout = 3 * time.Second
)

// Model hosts every registered autocomplete instance as one form
type Model struct {
	registry *registry.Registry
	styles   *views.Styles
	help     help.Model
	keys     keyMap

	width  int
	height int
	focus  int // index into registry.List()

	status    string
	statusErr bool
	statusSeq int
}

// region is where an instance was drawn in the last layout
type region struct {
	inst   *autocomplete.Model
	top    int
	height int
	width  int
}

// NewModel creates the host for reg's instances
func NewModel(reg *registry.Registry) *Model {
	return &Model{
		registry: reg,
		styles:   views.NewStyles(),
		help:     help.New(),
		keys:     newKeyMap(),
	}
}

// Init focuses the first input
func (m *Model) Init() tea.Cmd {
	if inst := m.focused(); inst != nil {
		return inst.Focus()
	}
	return nil
}

// Update routes messages to the host or the addressed instance
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		for _, inst := range m.registry.List() {
			inst.Update(msg)
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case query.ResultsMsg:
		if inst := m.registry.Get(msg.InstanceID); inst != nil {
			return m, inst.Update(msg)
		}
		logging.Debug("results for unknown instance dropped", "id", msg.InstanceID, "seq", msg.Seq)
		return m, nil

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	}

	// Cursor blinks and the like belong to the focused input
	if inst := m.focused(); inst != nil {
		return m, inst.Update(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.registry.DestroyAll()
		return tea.Quit
	case key.Matches(msg, m.keys.NextInput):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.PrevInput):
		return m.moveFocus(-1)
	case key.Matches(msg, m.keys.Destroy):
		return m.destroyFocused()
	}

	if inst := m.focused(); inst != nil {
		return inst.Update(msg)
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
	if !press && msg.Action != tea.MouseActionMotion {
		return nil
	}

	_, regions := m.layout()
	var cmds []tea.Cmd
	for i, r := range regions {
		inside := msg.Y >= r.top && msg.Y < r.top+r.height && msg.X < r.width
		if !press {
			if inside {
				r.inst.Update(autocomplete.HoverMsg{X: msg.X, Y: msg.Y - r.top})
			}
			continue
		}
		if !inside {
			r.inst.Update(autocomplete.ClickMsg{Outside: true})
			continue
		}
		if i != m.focus {
			cmds = append(cmds, m.setFocus(i))
		}
		cmds = append(cmds, r.inst.Update(autocomplete.ClickMsg{X: msg.X, Y: msg.Y - r.top}))
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.SuggestionsOpenedEvent:
		return m.setStatus(fmt.Sprintf("%d suggestions for %q", e.Count, e.Query), false)
	case eventbus.SuggestionSelectedEvent:
		return m.setStatus(fmt.Sprintf("%s: selected %s", e.ID, e.Item.Label), false)
	case eventbus.InstanceDestroyedEvent:
		return m.setStatus(fmt.Sprintf("%s removed", e.ID), false)
	case eventbus.ErrorEvent:
		msg := e.Message
		if e.Err != nil {
			msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		return m.setStatus(msg, true)
	}
	return nil
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// focused returns the focused instance, or nil when none are left
func (m *Model) focused() *autocomplete.Model {
	list := m.registry.List()
	if len(list) == 0 {
		return nil
	}
	if m.focus >= len(list) {
		m.focus = len(list) - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
	return list[m.focus]
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	n := m.registry.Len()
	if n == 0 {
		return nil
	}
	return m.setFocus(((m.focus+delta)%n + n) % n)
}

func (m *Model) setFocus(index int) tea.Cmd {
	if cur := m.focused(); cur != nil {
		cur.Blur()
	}
	m.focus = index
	if next := m.focused(); next != nil {
		return next.Focus()
	}
	return nil
}

func (m *Model) destroyFocused() tea.Cmd {
	inst := m.focused()
	if inst == nil {
		return nil
	}
	inst.Destroy()

	if next := m.focused(); next != nil {
		return next.Focus()
	}
	return nil
}

// layout renders the header and every instance, recording where each
// instance landed
func (m *Model) layout() ([]string, []region) {
	header := m.styles.Title.Render(title)
	parts := []string{header}
	top := lipgloss.Height(header)

	var regions []region
	for _, inst := range m.registry.List() {
		v := inst.View()
		h := lipgloss.Height(v)
		regions = append(regions, region{inst: inst, top: top, height: h, width: lipgloss.Width(v)})
		parts = append(parts, v, "")
		top += h + 1
	}
	return parts, regions
}

// View renders the form, status line and help footer
func (m *Model) View() string {
	parts, regions := m.layout()
	if len(regions) == 0 {
		parts = append(parts, m.styles.Dim.Render("No inputs left."))
	}

	status := m.styles.Status.Render(" ")
	if m.status != "" {
		style := m.styles.StatusSuccess
		if m.statusErr {
			style = m.styles.StatusError
		}
		status = m.styles.Status.Render(style.Render(m.status))
	}
	parts = append(parts, status, m.styles.Help.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

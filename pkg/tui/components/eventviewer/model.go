// Package eventviewer renders the debug pane listing applied view
// transitions, newest first.
package eventviewer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// Transition records one event the root model applied and the state it led to.
type Transition struct {
	At        time.Time
	Component string
	Event     string
	State     string
	// Changed is false when the event left the state as it was.
	Changed bool
}

// Styles controls the pane's presentation.
type Styles struct {
	Frame     lipgloss.Style
	Title     lipgloss.Style
	Clock     lipgloss.Style
	Component lipgloss.Style
	Event     lipgloss.Style
	State     lipgloss.Style
	Unchanged lipgloss.Style
}

// DefaultStyles returns the stock styling.
func DefaultStyles() Styles {
	muted := lipgloss.Color("244")
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("248")),
		Clock:     lipgloss.NewStyle().Foreground(muted),
		Component: lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Width(8),
		Event:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		State:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Unchanged: lipgloss.NewStyle().Foreground(muted).Faint(true),
	}
}

// Model keeps the most recent transitions up to a fixed limit.
type Model struct {
	viewport viewport.Model
	log      []Transition
	limit    int

	width, height int

	styles Styles
	now    func() time.Time
}

// NewModel returns a pane holding at most limit transitions.
func NewModel(limit int) *Model {
	if limit <= 0 {
		limit = 200
	}
	return &Model{
		viewport: viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		limit:    limit,
		styles:   DefaultStyles(),
		now:      time.Now,
	}
}

// Update scrolls the pane.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return m, cmd
}

// SetSize fits the pane, border and title row included, into width x height.
func (m *Model) SetSize(width, height int) {
	width, height = max(width, 4), max(height, 3)
	if m.width == width && m.height == height {
		return
	}
	m.width, m.height = width, height
	m.viewport.SetWidth(max(1, width-2))
	m.viewport.SetHeight(max(1, height-3))
	m.render()
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	title := m.styles.Title.Render(fmt.Sprintf("Transitions %d/%d", len(m.log), m.limit))
	body := lipgloss.JoinVertical(lipgloss.Left, title, m.viewport.View())
	return m.styles.Frame.Width(m.width - 2).Height(m.height - 2).Render(body)
}

// Record adds t at the top, dropping the oldest transition past the limit.
func (m *Model) Record(t Transition) {
	if t.At.IsZero() {
		t.At = m.now()
	}
	m.log = append([]Transition{t}, m.log...)
	if len(m.log) > m.limit {
		m.log = m.log[:m.limit]
	}
	m.render()
	m.viewport.SetYOffset(0)
}

// Transitions returns the recorded transitions, newest first.
func (m *Model) Transitions() []Transition { return m.log }

func (m *Model) render() {
	if len(m.log) == 0 {
		m.viewport.SetContent(m.styles.Clock.Render("Nothing applied yet"))
		return
	}
	var b strings.Builder
	for i, t := range m.log {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.line(t))
	}
	m.viewport.SetContent(b.String())
}

func (m *Model) line(t Transition) string {
	clock := m.styles.Clock.Render(t.At.Format("15:04:05"))
	component := m.styles.Component.Render(t.Component)
	if !t.Changed {
		return fmt.Sprintf("%s %s %s", clock, component, m.styles.Unchanged.Render(t.Event+" (no change)"))
	}
	return fmt.Sprintf("%s %s %s => %s", clock, component,
		m.styles.Event.Render(t.Event), m.styles.State.Render(t.State))
}

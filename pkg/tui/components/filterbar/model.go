// Package filterbar renders the owner search input and the year selector.
package filterbar

import (
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/archive/pkg/tui/events"
	"tableflip.dev/archive/pkg/tui/theme"
	"tableflip.dev/archive/pkg/viewstate"
)

const yearWidth = 14

// Model holds the search prompt and the year options.
type Model struct {
	id      events.ComponentID
	input   textinput.Model
	years   []string
	year    string
	focused bool
	width   int
	th      theme.FilterTheme
}

// NewModel constructs an unfocused filter bar.
func NewModel(id events.ComponentID, th theme.FilterTheme) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search by owner name..."
	ti.Prompt = "⌕ "
	// Unlimited, like the --search flag and the MCP search argument.
	ti.CharLimit = 0
	ti.Blur()
	return &Model{
		id:    id,
		input: ti,
		years: []string{viewstate.AllYears},
		year:  viewstate.AllYears,
		th:    th,
	}
}

// ID exposes the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// SetYears replaces the selectable year options.
func (m *Model) SetYears(options []string) {
	if len(options) == 0 {
		options = []string{viewstate.AllYears}
	}
	m.years = append([]string(nil), options...)
}

// SetValues mirrors the view state into the controls.
func (m *Model) SetValues(search, year string) {
	if m.input.Value() != search {
		m.input.SetValue(search)
		m.input.CursorEnd()
	}
	m.year = year
}

// Search returns the current input text.
func (m *Model) Search() string { return m.input.Value() }

// Year returns the selected year option.
func (m *Model) Year() string { return m.year }

// CycleYear advances the year selector and returns the change event.
func (m *Model) CycleYear() tea.Msg {
	m.year = viewstate.NextYear(m.years, m.year)
	return events.YearChangeMsg{Component: m.id, Year: m.year}
}

// Focus puts the cursor in the search input.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return m.input.Focus()
}

// Blur leaves the search input.
func (m *Model) Blur() {
	m.focused = false
	m.input.Blur()
}

// Focused reports whether the search input has focus.
func (m *Model) Focused() bool { return m.focused }

// SetWidth sizes the bar.
func (m *Model) SetWidth(width int) {
	m.width = width
	inputWidth := width - yearWidth - 2*m.th.Frame.GetHorizontalFrameSize() - 1 - lipgloss.Width(m.input.Prompt)
	m.input.SetWidth(max(inputWidth, 4))
}

// Height is the rendered height of the bar.
func (m *Model) Height() int {
	return 1 + m.th.Frame.GetVerticalFrameSize()
}

// Update forwards a key to the search input and reports the new term when
// the text changed.
func (m *Model) Update(msg tea.Msg) (tea.Msg, tea.Cmd) {
	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if next := m.input.Value(); next != prev {
		return events.SearchChangeMsg{Component: m.id, Term: next}, cmd
	}
	return nil, cmd
}

// View renders the search box next to the year selector.
func (m *Model) View() string {
	frame := m.th.Frame
	if m.focused {
		frame = m.th.FocusedFrame
	}
	searchWidth := m.width - yearWidth - 2*frame.GetHorizontalFrameSize() - 1
	search := frame.Width(max(searchWidth, 1)).Render(m.input.View())
	year := m.th.Frame.Width(yearWidth).Render(m.th.Label.Render("y ") + m.th.Year.Render(yearLabel(m.year)))
	return lipgloss.JoinHorizontal(lipgloss.Top, search, " ", year)
}

func yearLabel(year string) string {
	if year == viewstate.AllYears {
		return "All Years"
	}
	return year
}

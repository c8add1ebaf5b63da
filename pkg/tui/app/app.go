// Package teaui hosts the Bubble Tea program for the archive browser.
package teaui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"go.uber.org/zap"

	"tableflip.dev/archive/pkg/app"
	"tableflip.dev/archive/pkg/tui/components/doctable"
	"tableflip.dev/archive/pkg/tui/components/eventviewer"
	"tableflip.dev/archive/pkg/tui/components/filterbar"
	"tableflip.dev/archive/pkg/tui/components/help"
	"tableflip.dev/archive/pkg/tui/components/shelfgrid"
	"tableflip.dev/archive/pkg/tui/components/sidebar"
	"tableflip.dev/archive/pkg/tui/events"
	"tableflip.dev/archive/pkg/tui/theme"
	"tableflip.dev/archive/pkg/viewstate"
)

type focusArea int

const (
	focusSidebar focusArea = iota
	focusSearch
	focusContent
)

func (f focusArea) String() string {
	switch f {
	case focusSidebar:
		return "sidebar"
	case focusSearch:
		return "search"
	default:
		return "content"
	}
}

const (
	sidebarWidth = 26
	debugRows    = 8
	backHint     = "esc Back to Bookshelves"
	keyHints     = "tab focus · / search · y year · enter open · esc back · ? help · q quit"
)

const (
	idSidebar events.ComponentID = "sidebar"
	idFilter  events.ComponentID = "filter"
	idGrid    events.ComponentID = "shelves"
	idRoot    events.ComponentID = "root"
)

// Model is the root of the archive browser. It owns the only view state;
// components report what happened and the model applies it before handling
// the next message.
type Model struct {
	svc *app.Service
	ctx context.Context
	log *zap.Logger
	th  theme.Theme

	state  viewstate.State
	screen app.Screen
	err    error

	width  int
	height int
	focus  focusArea

	sidebar *sidebar.Model
	filter  *filterbar.Model
	grid    *shelfgrid.Model
	table   *doctable.Model

	help        *help.Model
	helpVisible bool

	events *eventviewer.Model
	debug  bool

	status string
}

// New constructs the root model over svc. A nil logger discards logs.
func New(ctx context.Context, svc *app.Service, log *zap.Logger) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if log == nil {
		log = zap.NewNop()
	}
	if svc == nil {
		svc = &app.Service{}
	}
	th := theme.Default()
	m := &Model{
		svc:     svc,
		ctx:     ctx,
		log:     log,
		th:      th,
		state:   viewstate.New(),
		sidebar: sidebar.NewModel(idSidebar, viewstate.Sections(), th.Sidebar),
		filter:  filterbar.NewModel(idFilter, th.Filter),
		grid:    shelfgrid.NewModel(idGrid, th.Shelf, th.Status),
		table:   doctable.NewModel(th.Table, th.Status),
		help:    help.New(80, 24, th.Modal.Frame),
		events:  eventviewer.NewModel(200),
	}
	m.setFocus(focusContent)
	m.refresh()
	return m
}

// Run launches the interactive TUI program.
func Run(ctx context.Context, svc *app.Service, log *zap.Logger) error {
	p := tea.NewProgram(New(ctx, svc, log), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// State returns the current view state.
func (m *Model) State() viewstate.State { return m.state }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update routes Bubble Tea messages to the focused component and applies
// whatever it reports.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.layout()
		return m, nil
	case tea.KeyPressMsg:
		return m, m.handleKey(v)
	case events.SectionSelectMsg, events.BookSelectMsg, events.BookHighlightMsg,
		events.BackMsg, events.SearchChangeMsg, events.YearChangeMsg:
		m.apply(msg)
		return m, nil
	}
	if m.focus == focusSearch {
		_, cmd := m.filter.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		return tea.Quit
	}

	if m.helpVisible {
		switch key {
		case "?", "esc", "q":
			m.helpVisible = false
			return nil
		}
		_, cmd := m.help.Update(msg)
		return cmd
	}

	if m.focus == focusSearch {
		switch key {
		case "esc", "enter":
			return m.setFocus(focusContent)
		case "tab":
			return m.setFocus(m.nextFocus(1))
		case "shift+tab":
			return m.setFocus(m.nextFocus(-1))
		}
		ev, cmd := m.filter.Update(msg)
		m.apply(ev)
		return cmd
	}

	switch key {
	case "q":
		return tea.Quit
	case "?":
		m.helpVisible = true
		return nil
	case "ctrl+d":
		m.debug = !m.debug
		m.layout()
		return nil
	case "tab":
		return m.setFocus(m.nextFocus(1))
	case "shift+tab":
		return m.setFocus(m.nextFocus(-1))
	case "/":
		if m.state.Inspecting() {
			m.status = "Search is available on the bookshelves view"
			return nil
		}
		return m.setFocus(focusSearch)
	case "y":
		if m.state.Inspecting() {
			m.status = "Year filter is available on the bookshelves view"
			return nil
		}
		m.apply(m.filter.CycleYear())
		return nil
	case "esc", "backspace":
		if m.state.Inspecting() {
			m.apply(events.BackMsg{Component: idRoot})
			m.setFocus(focusContent)
		}
		return nil
	}

	switch m.focus {
	case focusSidebar:
		if ev, ok := m.sidebar.HandleKey(msg); ok {
			m.apply(ev)
		}
	case focusContent:
		if m.state.Inspecting() {
			m.table.HandleKey(msg)
			return nil
		}
		if ev, ok := m.grid.HandleKey(msg); ok {
			m.apply(ev)
		}
	}
	return nil
}

// apply resolves one component event against the view state and re-derives
// the screen. Nil events are ignored.
func (m *Model) apply(msg tea.Msg) {
	if msg == nil {
		return
	}
	prev := m.state
	switch v := msg.(type) {
	case events.SectionSelectMsg:
		m.state = m.state.Navigate(v.Section)
		m.status = ""
	case events.BookSelectMsg:
		m.state = m.state.SelectBook(v.Book)
		m.status = ""
		m.focus = focusContent
	case events.BookHighlightMsg:
		m.status = v.Book.Owner
		return
	case events.BackMsg:
		m.state = m.state.Back()
		m.status = ""
	case events.SearchChangeMsg:
		m.state = m.state.WithSearch(v.Term)
	case events.YearChangeMsg:
		m.state = m.state.WithYear(v.Year)
	default:
		return
	}
	m.note(msg, prev)
	m.refresh()
	m.setFocus(m.focus)
}

type describer interface {
	Describe() string
}

func (m *Model) note(msg tea.Msg, prev viewstate.State) {
	source, _ := events.Source(msg)
	detail := ""
	if d, ok := msg.(describer); ok {
		detail = d.Describe()
	}
	m.log.Debug("apply",
		zap.String("source", string(source)),
		zap.String("event", detail),
		zap.Stringer("from", prev),
		zap.Stringer("to", m.state),
		zap.Stringer("focus", m.focus),
	)
	m.events.Record(eventviewer.Transition{
		Component: string(source),
		Event:     detail,
		State:     m.state.String(),
		Changed:   prev.String() != m.state.String(),
	})
}

// refresh re-derives the screen from the current state and pushes it into
// the components.
func (m *Model) refresh() {
	screen, err := m.svc.Screen(m.ctx, m.state)
	if err != nil {
		m.err = err
		m.log.Error("derive screen", zap.Error(err))
		m.screen = app.Screen{}
		m.grid.SetShelves(nil)
		m.table.SetDocuments(nil)
		return
	}
	m.err = nil
	m.screen = screen

	if years, err := m.svc.YearOptions(m.ctx); err == nil {
		m.filter.SetYears(years)
	}
	m.sidebar.SetActive(m.state.Section)
	m.filter.SetValues(m.state.Search, m.state.Year)
	if screen.Inspecting {
		m.table.SetDocuments(screen.Documents)
	} else {
		m.grid.SetShelves(screen.Shelves)
	}
	m.layout()
}

// nextFocus cycles sidebar, search and content. Search is skipped while a
// book is open because the filter bar is hidden.
func (m *Model) nextFocus(delta int) focusArea {
	order := []focusArea{focusSidebar, focusSearch, focusContent}
	if m.state.Inspecting() {
		order = []focusArea{focusSidebar, focusContent}
	}
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(order)) % len(order)
	return order[idx]
}

func (m *Model) setFocus(f focusArea) tea.Cmd {
	if f == focusSearch && m.state.Inspecting() {
		f = focusContent
	}
	m.focus = f
	m.sidebar.Blur()
	m.grid.Blur()
	m.table.Blur()
	m.filter.Blur()
	switch f {
	case focusSidebar:
		m.sidebar.Focus()
	case focusSearch:
		return m.filter.Focus()
	case focusContent:
		if m.state.Inspecting() {
			m.table.Focus()
		} else {
			m.grid.Focus()
		}
	}
	return nil
}

func (m *Model) contentWidth() int {
	return max(m.width-sidebarWidth-1, 1)
}

func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	footerRows := 1
	m.sidebar.SetSize(sidebarWidth, max(m.height-footerRows, 1))

	width := m.contentWidth()
	body := m.height - footerRows - lipgloss.Height(m.renderHeader())
	if !m.state.Inspecting() {
		m.filter.SetWidth(width)
		body -= m.filter.Height()
	}
	if m.debug {
		rows := min(debugRows, max(body/2, 3))
		m.events.SetSize(width, rows)
		body -= rows
	}
	body = max(body, 1)
	m.grid.SetSize(width, body)
	m.table.SetSize(width, body)
	m.help.SetSize(min(m.width-4, 80), m.height-4)
}

// View renders the sidebar next to the content pane, or the help overlay.
func (m *Model) View() (string, *tea.Cursor) {
	if m.width <= 0 || m.height <= 0 {
		return "initializing…", nil
	}
	if m.helpVisible {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.help.View()), nil
	}

	parts := []string{m.renderHeader()}
	if m.err == nil {
		if m.state.Inspecting() {
			parts = append(parts, m.table.View())
		} else {
			parts = append(parts, m.filter.View(), m.grid.View())
		}
	}
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	bodyRows := m.height - 1
	if m.debug {
		content = clipLines(content, bodyRows-lipgloss.Height(m.events.View()))
		content = lipgloss.JoinVertical(lipgloss.Left, content, m.events.View())
	}
	content = clipLines(content, bodyRows)

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), " ", content)
	return lipgloss.JoinVertical(lipgloss.Left, clipLines(body, bodyRows), m.renderFooter()), nil
}

func (m *Model) renderHeader() string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.th.Header.Title.Render(m.screen.Title),
		m.th.Header.Subtitle.Render(m.screen.Subtitle),
	)
	if m.screen.Inspecting {
		hint := m.th.Header.Hint.Render(backHint)
		gap := m.contentWidth() - lipgloss.Width(left) - lipgloss.Width(hint)
		left = lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", max(gap, 1)), hint)
	}
	return m.th.Header.Frame.Width(m.contentWidth()).Render(left)
}

func (m *Model) renderFooter() string {
	switch {
	case m.err != nil:
		return m.th.Footer.Error.Render("error: " + m.err.Error())
	case m.status != "":
		return m.th.Footer.Status.Render(m.status)
	default:
		return m.th.Footer.Help.Render(keyHints)
	}
}

func clipLines(s string, rows int) string {
	if rows <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > rows {
		lines = lines[:rows]
	}
	return strings.Join(lines, "\n")
}

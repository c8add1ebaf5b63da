// Package sidebar renders the section navigation column.
package sidebar

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/list"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/archive/pkg/tui/events"
	"tableflip.dev/archive/pkg/tui/theme"
	"tableflip.dev/archive/pkg/viewstate"
)

const (
	title     = "Archive System"
	subtitle  = "Document Management"
	copyright = "© 2026 Archive System"
)

// Model wraps a bubbles list for section navigation.
type Model struct {
	id       events.ComponentID
	list     list.Model
	focusDel list.DefaultDelegate
	blurDel  list.DefaultDelegate
	sections []viewstate.Section
	active   viewstate.Section
	focused  bool
	width    int
	height   int
	th       theme.SidebarTheme
}

// NewModel constructs the nav list over sections.
func NewModel(id events.ComponentID, sections []viewstate.Section, th theme.SidebarTheme) *Model {
	dFocus := list.NewDefaultDelegate()
	dBlur := list.NewDefaultDelegate()
	// Unfocused list should not visually highlight the cursor row
	dBlur.Styles.SelectedTitle = dBlur.Styles.NormalTitle
	dFocus.ShowDescription = false
	dBlur.ShowDescription = false
	dFocus.SetSpacing(0)
	dBlur.SetSpacing(0)

	l := list.New(nil, dBlur, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)

	m := &Model{
		id:       id,
		list:     l,
		focusDel: dFocus,
		blurDel:  dBlur,
		sections: append([]viewstate.Section(nil), sections...),
		th:       th,
	}
	if len(sections) > 0 {
		m.active = sections[0]
	}
	m.refreshItems()
	return m
}

// ID exposes the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// SetActive marks the current section and moves the cursor to it.
func (m *Model) SetActive(section viewstate.Section) {
	m.active = section
	m.refreshItems()
	for i, s := range m.sections {
		if s == section {
			m.list.Select(i)
			break
		}
	}
}

// Active returns the marked section.
func (m *Model) Active() viewstate.Section { return m.active }

// Cursor returns the section under the cursor.
func (m *Model) Cursor() viewstate.Section {
	if it, ok := m.list.SelectedItem().(sectionItem); ok {
		return it.section
	}
	return m.active
}

// Focus highlights the cursor row.
func (m *Model) Focus() {
	m.focused = true
	m.list.SetDelegate(m.focusDel)
}

// Blur hides the cursor highlight.
func (m *Model) Blur() {
	m.focused = false
	m.list.SetDelegate(m.blurDel)
}

// SetSize updates the column dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	inner := width - m.th.Frame.GetHorizontalFrameSize()
	// title, subtitle, blank line above the list; blank line and copyright below
	m.list.SetSize(max(inner, 1), max(height-5, 1))
}

// HandleKey moves the cursor or activates a section. It returns the event to
// apply, if any, and whether the key was consumed.
func (m *Model) HandleKey(msg tea.KeyPressMsg) (tea.Msg, bool) {
	switch msg.String() {
	case "up", "k":
		m.list.CursorUp()
		return nil, true
	case "down", "j":
		m.list.CursorDown()
		return nil, true
	case "home", "g":
		m.list.Select(0)
		return nil, true
	case "end", "G":
		m.list.Select(len(m.sections) - 1)
		return nil, true
	case "enter", "space":
		return events.SectionSelectMsg{Component: m.id, Section: m.Cursor()}, true
	}
	return nil, false
}

// View renders the column.
func (m *Model) View() string {
	lines := []string{
		m.th.Title.Render(title),
		m.th.Subtitle.Render(subtitle),
		"",
		m.list.View(),
	}
	body := strings.Join(lines, "\n")
	used := lipgloss.Height(body)
	if pad := m.height - used - 1; pad > 0 {
		body += strings.Repeat("\n", pad)
	}
	body += "\n" + m.th.Copyright.Render(copyright)
	inner := m.width - m.th.Frame.GetHorizontalFrameSize()
	return m.th.Frame.Width(max(inner, 1)).Height(max(m.height, 1)).Render(body)
}

func (m *Model) refreshItems() {
	items := make([]list.Item, 0, len(m.sections))
	for _, s := range m.sections {
		items = append(items, sectionItem{section: s, active: s == m.active})
	}
	m.list.SetItems(items)
}

type sectionItem struct {
	section viewstate.Section
	active  bool
}

func (s sectionItem) Title() string {
	if s.active {
		return "● " + s.section.Label()
	}
	return "  " + s.section.Label()
}
func (sectionItem) Description() string   { return "" }
func (s sectionItem) FilterValue() string { return s.section.Label() }

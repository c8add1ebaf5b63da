// Package doctable renders a book's documents as a table.
package doctable

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"

	"tableflip.dev/archive/pkg/catalog"
	"tableflip.dev/archive/pkg/status"
	"tableflip.dev/archive/pkg/tui/theme"
)

// Headers are the table's column titles.
var Headers = []string{"Document Name", "Type", "Status", "Cabinet", "Shelf", "Actions"}

const (
	colStatus  = 2
	colActions = 5
	actions    = "view · download · update"
)

// Model holds the documents of the inspected book.
type Model struct {
	docs    []catalog.Document
	cursor  int
	offset  int
	focused bool

	width  int
	height int

	th     theme.TableTheme
	status theme.StatusTheme
}

// NewModel constructs an empty table.
func NewModel(th theme.TableTheme, st theme.StatusTheme) *Model {
	return &Model{th: th, status: st, height: 1}
}

// SetDocuments replaces the rows in stored order and resets the cursor.
func (m *Model) SetDocuments(docs []catalog.Document) {
	m.docs = docs
	m.cursor = 0
	m.offset = 0
}

// Documents returns the current rows.
func (m *Model) Documents() []catalog.Document { return m.docs }

// SetSize sets the pane dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 1)
	m.height = max(height, 1)
	m.clampOffset()
}

// Focus highlights the cursor row.
func (m *Model) Focus() { m.focused = true }

// Blur removes the cursor highlight.
func (m *Model) Blur() { m.focused = false }

// Cursor returns the highlighted row index.
func (m *Model) Cursor() int { return m.cursor }

// HandleKey moves the row cursor.
func (m *Model) HandleKey(msg tea.KeyPressMsg) bool {
	if len(m.docs) == 0 {
		return false
	}
	switch msg.String() {
	case "up", "k":
		m.cursor = max(m.cursor-1, 0)
	case "down", "j":
		m.cursor = min(m.cursor+1, len(m.docs)-1)
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.docs) - 1
	default:
		return false
	}
	m.clampOffset()
	return true
}

// bodyRows is how many document rows fit below the header and borders.
func (m *Model) bodyRows() int {
	// top border, header, header separator, bottom border
	return max(m.height-4, 1)
}

func (m *Model) clampOffset() {
	rows := m.bodyRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// View renders the table. With no documents only the header is drawn.
func (m *Model) View() string {
	end := min(m.offset+m.bodyRows(), len(m.docs))
	start := min(m.offset, end)
	window := m.docs[start:end]

	rows := make([][]string, 0, len(window))
	for _, d := range window {
		rows = append(rows, []string{
			d.Name,
			d.Type,
			status.Treat(d.Status).Badge(),
			d.Cabinet,
			d.Shelf,
			actions,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(m.th.Border).
		Headers(Headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return m.th.Header
			}
			if m.focused && start+row == m.cursor {
				return m.th.Selected
			}
			switch col {
			case colStatus:
				if row >= 0 && row < len(window) {
					return m.status.Style(status.Treat(window[row].Status).Tone).Padding(0, 1)
				}
			case colActions:
				return m.th.Actions
			}
			return m.th.Cell
		})
	return t.String()
}

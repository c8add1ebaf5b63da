// Package shelfgrid renders visible shelves as headed rows of book cards.
package shelfgrid

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/archive/pkg/catalog"
	"tableflip.dev/archive/pkg/tui/events"
	"tableflip.dev/archive/pkg/tui/theme"
)

const (
	cardWidth = 28
	cardGap   = 2
	// EmptyText is shown when no shelf survives the filters.
	EmptyText = "No bookshelves match the current filters."
)

// Model is a scrollable grid of book cards grouped by shelf.
type Model struct {
	id      events.ComponentID
	shelves []catalog.Shelf
	books   []slot
	cursor  int
	scroll  int
	focused bool

	width  int
	height int

	th     theme.ShelfTheme
	status theme.StatusTheme
}

// slot locates a book in the laid-out grid.
type slot struct {
	book  catalog.Book
	shelf int
	row   int // global row index across shelves
	col   int
}

// NewModel constructs an empty grid.
func NewModel(id events.ComponentID, th theme.ShelfTheme, st theme.StatusTheme) *Model {
	return &Model{id: id, th: th, status: st, width: cardWidth, height: 1}
}

// ID exposes the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// SetShelves replaces the grid contents. The cursor stays on the same book
// when it is still visible.
func (m *Model) SetShelves(shelves []catalog.Shelf) {
	current, hadCurrent := m.Selected()
	m.shelves = shelves
	m.layout()
	m.cursor = 0
	if hadCurrent {
		for i, s := range m.books {
			if s.book.ID == current.ID {
				m.cursor = i
				break
			}
		}
	}
	m.ensureVisible()
}

// SetSize sets the pane dimensions and re-flows the cards.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 1)
	m.height = max(height, 1)
	m.layout()
	m.ensureVisible()
}

// Focus highlights the card under the cursor.
func (m *Model) Focus() { m.focused = true }

// Blur removes the cursor highlight.
func (m *Model) Blur() { m.focused = false }

// Selected returns the book under the cursor.
func (m *Model) Selected() (catalog.Book, bool) {
	if m.cursor < 0 || m.cursor >= len(m.books) {
		return catalog.Book{}, false
	}
	return m.books[m.cursor].book, true
}

// Columns is the number of cards per row at the current width.
func (m *Model) Columns() int {
	return max((m.width+cardGap)/(cardWidth+cardGap), 1)
}

// HandleKey moves the cursor or activates the current card.
func (m *Model) HandleKey(msg tea.KeyPressMsg) (tea.Msg, bool) {
	if len(m.books) == 0 {
		return nil, false
	}
	prev := m.cursor
	switch msg.String() {
	case "left", "h":
		m.cursor = max(m.cursor-1, 0)
	case "right", "l":
		m.cursor = min(m.cursor+1, len(m.books)-1)
	case "up", "k":
		m.cursor = m.verticalTarget(-1)
	case "down", "j":
		m.cursor = m.verticalTarget(1)
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.books) - 1
	case "enter", "space":
		return events.BookSelectMsg{Component: m.id, Book: m.books[m.cursor].book}, true
	default:
		return nil, false
	}
	m.ensureVisible()
	if m.cursor == prev {
		return nil, true
	}
	return events.BookHighlightMsg{Component: m.id, Book: m.books[m.cursor].book}, true
}

// verticalTarget finds the card in the adjacent row closest to the cursor column.
func (m *Model) verticalTarget(delta int) int {
	cur := m.books[m.cursor]
	want := cur.row + delta
	best := -1
	for i, s := range m.books {
		if s.row != want {
			continue
		}
		if best == -1 || s.col <= cur.col {
			best = i
		}
	}
	if best == -1 {
		return m.cursor
	}
	return best
}

func (m *Model) layout() {
	cols := m.Columns()
	m.books = m.books[:0]
	row := 0
	for si, shelf := range m.shelves {
		for bi, b := range shelf.Books {
			m.books = append(m.books, slot{
				book:  b,
				shelf: si,
				row:   row + bi/cols,
				col:   bi % cols,
			})
		}
		row += (len(shelf.Books) + cols - 1) / cols
	}
	if m.cursor >= len(m.books) {
		m.cursor = max(len(m.books)-1, 0)
	}
}

// rowSpans returns the first line of every row (including the shelf heading
// for a shelf's first row) and the line after its last card.
func (m *Model) rowSpans() (starts, ends []int) {
	cardHeight := lipgloss.Height(m.renderCard(catalog.Book{}, false))
	line := 0
	cols := m.Columns()
	for si, shelf := range m.shelves {
		if si > 0 {
			line++ // blank line between shelves
		}
		rows := (len(shelf.Books) + cols - 1) / cols
		for r := 0; r < rows; r++ {
			start := line
			if r == 0 {
				line++ // heading
			}
			line += cardHeight
			starts = append(starts, start)
			ends = append(ends, line)
		}
	}
	return starts, ends
}

func (m *Model) ensureVisible() {
	if len(m.books) == 0 {
		m.scroll = 0
		return
	}
	starts, ends := m.rowSpans()
	row := m.books[m.cursor].row
	if row >= len(starts) {
		return
	}
	if starts[row] < m.scroll {
		m.scroll = starts[row]
	}
	if ends[row] > m.scroll+m.height {
		m.scroll = max(ends[row]-m.height, 0)
	}
}

// View renders the visible window of the grid.
func (m *Model) View() string {
	if len(m.shelves) == 0 {
		return m.th.Empty.Render(EmptyText)
	}
	cols := m.Columns()
	var blocks []string
	idx := 0
	for si, shelf := range m.shelves {
		if si > 0 {
			blocks = append(blocks, "")
		}
		blocks = append(blocks, m.th.Heading.Render("▦ "+shelf.Label()))
		for start := 0; start < len(shelf.Books); start += cols {
			end := min(start+cols, len(shelf.Books))
			cards := make([]string, 0, 2*(end-start))
			for i := start; i < end; i++ {
				if i > start {
					cards = append(cards, strings.Repeat(" ", cardGap))
				}
				cards = append(cards, m.renderCard(shelf.Books[i], m.focused && idx == m.cursor))
				idx++
			}
			blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
		}
	}
	lines := strings.Split(strings.Join(blocks, "\n"), "\n")
	if m.scroll > 0 && m.scroll < len(lines) {
		lines = lines[m.scroll:]
	}
	if len(lines) > m.height {
		lines = lines[:m.height]
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderCard(b catalog.Book, focused bool) string {
	style := m.th.Card
	if focused {
		style = m.th.CardFocused
	}
	inner := cardWidth - style.GetHorizontalFrameSize()
	owner := truncate.StringWithTail("▤ "+b.Owner, uint(inner), "…")
	body := strings.Join([]string{
		m.th.Owner.Render(owner),
		m.status.Badge(b.Status),
		m.th.Count.Render(fmt.Sprintf("%d documents", b.DocCount)),
	}, "\n")
	return style.Width(inner).Render(body)
}

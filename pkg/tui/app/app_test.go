package teaui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/archive/pkg/app"
	"tableflip.dev/archive/pkg/catalog"
	"tableflip.dev/archive/pkg/tui/components/shelfgrid"
	"tableflip.dev/archive/pkg/tui/events"
	"tableflip.dev/archive/pkg/viewstate"
)

func stripANSIString(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		if r == ansi.Marker {
			inEscape = true
			continue
		}
		if inEscape {
			if ansi.IsTerminator(r) {
				inEscape = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := New(context.Background(), &app.Service{Source: catalog.Default()}, nil)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 48})
	return m
}

func press(m *Model, keys ...tea.KeyPressMsg) {
	for _, k := range keys {
		m.Update(k)
	}
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func runeKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

var (
	keyEnter    = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyEsc      = tea.KeyPressMsg{Code: tea.KeyEscape}
	keyTab      = tea.KeyPressMsg{Code: tea.KeyTab}
	keyShiftTab = tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	keyDown     = tea.KeyPressMsg{Code: tea.KeyDown}
)

func view(m *Model) string {
	v, _ := m.View()
	return stripANSIString(v)
}

func TestInitialScreenShowsAllShelves(t *testing.T) {
	m := newTestModel(t)
	plain := view(m)
	for _, want := range []string{
		"Archive System",
		"Document Management",
		"Bookshelves",
		"Manage digital archives and documents",
		"January 2024",
		"February 2024",
		"December 2023",
		"Maria Santos",
		"All Years",
	} {
		if !strings.Contains(plain, want) {
			t.Fatalf("expected %q in view:\n%s", want, plain)
		}
	}
	if strings.Contains(plain, backHint) {
		t.Fatalf("back hint should only show while a book is open")
	}
}

func TestSearchNarrowsGrid(t *testing.T) {
	m := newTestModel(t)
	press(m, runeKey('/'))
	if m.focus != focusSearch {
		t.Fatalf("expected search focus, got %s", m.focus)
	}
	typeText(m, "CRUZ")
	press(m, keyEsc)

	if got := m.State().Search; got != "CRUZ" {
		t.Fatalf("expected search term CRUZ, got %q", got)
	}
	if m.focus != focusContent {
		t.Fatalf("esc should leave the search box, focus is %s", m.focus)
	}
	plain := view(m)
	for _, want := range []string{"Juan Dela Cruz", "Roberto Cruz"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("expected %q in filtered view:\n%s", want, plain)
		}
	}
	for _, gone := range []string{"Maria Santos", "February 2024"} {
		if strings.Contains(plain, gone) {
			t.Fatalf("did not expect %q in filtered view:\n%s", gone, plain)
		}
	}
}

func TestSelectThenBackKeepsFilters(t *testing.T) {
	m := newTestModel(t)
	press(m, runeKey('/'))
	typeText(m, "cruz")
	press(m, keyEnter)
	press(m, keyEnter)

	state := m.State()
	if !state.Inspecting() || state.Selected.ID != 102 {
		t.Fatalf("expected book 102 to be open, got %s", state)
	}
	plain := view(m)
	for _, want := range []string{"Digital Book - Juan Dela Cruz", "8 documents", "Employment Records", backHint, "Document Name"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("expected %q in inspection view:\n%s", want, plain)
		}
	}

	press(m, keyEsc)
	state = m.State()
	if state.Inspecting() {
		t.Fatalf("expected back to the grid")
	}
	if state.Search != "cruz" || state.Year != viewstate.AllYears {
		t.Fatalf("filters should survive back, got %s", state)
	}
	if plain := view(m); strings.Contains(plain, "Maria Santos") {
		t.Fatalf("grid should still be filtered:\n%s", plain)
	}
}

func TestBackspaceLeavesInspection(t *testing.T) {
	m := newTestModel(t)
	press(m, keyEnter)
	if !m.State().Inspecting() {
		t.Fatalf("expected the first book to be open")
	}
	press(m, tea.KeyPressMsg{Code: tea.KeyBackspace})
	if m.State().Inspecting() {
		t.Fatalf("backspace should return to the grid")
	}
}

func TestSidebarNavigationClearsSelection(t *testing.T) {
	m := newTestModel(t)
	press(m, runeKey('y'))
	press(m, keyEnter)
	if !m.State().Inspecting() {
		t.Fatalf("expected a book to be open")
	}

	// content -> sidebar while inspecting skips the hidden search box
	press(m, keyTab)
	if m.focus != focusSidebar {
		t.Fatalf("expected sidebar focus, got %s", m.focus)
	}
	press(m, keyDown, keyEnter)

	state := m.State()
	if state.Selected != nil {
		t.Fatalf("navigation should clear the selection, got %s", state)
	}
	if state.Section != viewstate.Sections()[1] {
		t.Fatalf("expected section %q, got %q", viewstate.Sections()[1], state.Section)
	}
	if state.Year != "2024" {
		t.Fatalf("navigation should keep the year filter, got %q", state.Year)
	}
}

func TestYearCycles(t *testing.T) {
	m := newTestModel(t)
	want := []string{"2024", "2023", viewstate.AllYears}
	for _, year := range want {
		press(m, runeKey('y'))
		if got := m.State().Year; got != year {
			t.Fatalf("expected year %q, got %q", year, got)
		}
	}
	press(m, runeKey('y'), runeKey('y'))
	if plain := view(m); strings.Contains(plain, "January 2024") || !strings.Contains(plain, "December 2023") {
		t.Fatalf("2023 filter should only show December 2023:\n%s", plain)
	}
}

func TestFilterKeysRefusedWhileInspecting(t *testing.T) {
	m := newTestModel(t)
	press(m, keyEnter)
	if !m.State().Inspecting() {
		t.Fatalf("expected a book to be open")
	}

	tests := []struct {
		key  rune
		want string
	}{
		{key: 'y', want: "Year filter is available on the bookshelves view"},
		{key: '/', want: "Search is available on the bookshelves view"},
	}
	for _, tt := range tests {
		m.status = ""
		press(m, runeKey(tt.key))
		if m.status != tt.want {
			t.Fatalf("%q: expected status %q, got %q", tt.key, tt.want, m.status)
		}
		if got := m.State().Year; got != viewstate.AllYears {
			t.Fatalf("%q: year should not change while inspecting, got %q", tt.key, got)
		}
		if m.focus == focusSearch {
			t.Fatalf("%q: search should not take focus while inspecting", tt.key)
		}
		if plain := view(m); !strings.Contains(plain, tt.want) {
			t.Fatalf("%q: expected status in footer:\n%s", tt.key, plain)
		}
	}
}

func TestEmptyFilterShowsHint(t *testing.T) {
	m := newTestModel(t)
	press(m, runeKey('/'))
	typeText(m, "zzz")

	plain := view(m)
	if !strings.Contains(plain, shelfgrid.EmptyText) {
		t.Fatalf("expected empty hint:\n%s", plain)
	}
	if strings.Contains(plain, "▦") {
		t.Fatalf("no shelf headings expected:\n%s", plain)
	}
}

func TestEmptyDocumentTableShowsHeaderOnly(t *testing.T) {
	m := newTestModel(t)
	book, ok := catalog.FindBook(catalog.Default().ListShelves(context.Background()), 201)
	if !ok {
		t.Fatalf("book 201 missing from fixture")
	}
	m.Update(events.BookSelectMsg{Component: idGrid, Book: book})

	plain := view(m)
	for _, want := range []string{"Digital Book - Pedro Garcia", "10 documents", "Document Name", "Cabinet"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("expected %q in view:\n%s", want, plain)
		}
	}
	if strings.Contains(plain, "view · download") {
		t.Fatalf("no document rows expected:\n%s", plain)
	}
}

func TestFocusCycle(t *testing.T) {
	m := newTestModel(t)
	if m.focus != focusContent {
		t.Fatalf("expected content focus, got %s", m.focus)
	}
	press(m, keyTab)
	if m.focus != focusSidebar {
		t.Fatalf("expected sidebar focus, got %s", m.focus)
	}
	press(m, keyTab)
	if m.focus != focusSearch {
		t.Fatalf("expected search focus, got %s", m.focus)
	}
	press(m, keyShiftTab)
	if m.focus != focusSidebar {
		t.Fatalf("expected sidebar focus after shift+tab, got %s", m.focus)
	}
}

func TestHelpOverlayToggles(t *testing.T) {
	m := newTestModel(t)
	press(m, runeKey('?'))
	if !m.helpVisible {
		t.Fatalf("expected help to open")
	}
	if plain := view(m); !strings.Contains(plain, "Moving around") {
		t.Fatalf("expected help content:\n%s", plain)
	}
	press(m, keyEsc)
	if m.helpVisible {
		t.Fatalf("expected help to close")
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestDebugPaneRecordsTransitions(t *testing.T) {
	m := newTestModel(t)
	press(m, tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl})
	if !m.debug {
		t.Fatalf("expected debug pane on")
	}
	press(m, runeKey('y'))
	log := m.events.Transitions()
	if len(log) != 1 || log[0].Event != `year:"2024"` || !log[0].Changed {
		t.Fatalf("unexpected transitions %+v", log)
	}
	if !strings.Contains(log[0].State, `year:"2024"`) {
		t.Fatalf("expected resulting state, got %q", log[0].State)
	}
	if plain := view(m); !strings.Contains(plain, "Transitions 1/200") {
		t.Fatalf("expected event pane:\n%s", plain)
	}
}

func TestMissingSourceShowsError(t *testing.T) {
	m := New(context.Background(), &app.Service{}, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if !errors.Is(m.err, app.ErrNoSource) {
		t.Fatalf("expected ErrNoSource, got %v", m.err)
	}
	if plain := view(m); !strings.Contains(plain, "no catalog source configured") {
		t.Fatalf("expected error in footer:\n%s", plain)
	}
}

package sidebar

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/archive/pkg/tui/events"
	"tableflip.dev/archive/pkg/tui/theme"
	"tableflip.dev/archive/pkg/viewstate"
)

func TestEnterSelectsCursorSection(t *testing.T) {
	m := NewModel("nav", viewstate.Sections(), theme.Default().Sidebar)
	m.SetSize(26, 30)
	m.Focus()

	if _, handled := m.HandleKey(tea.KeyPressMsg{Code: tea.KeyDown}); !handled {
		t.Fatalf("down should be handled")
	}
	msg, handled := m.HandleKey(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !handled {
		t.Fatalf("enter should be handled")
	}
	sel, ok := msg.(events.SectionSelectMsg)
	if !ok {
		t.Fatalf("expected SectionSelectMsg, got %#v", msg)
	}
	if sel.Section != viewstate.Sections()[1] || sel.Component != "nav" {
		t.Fatalf("unexpected selection %+v", sel)
	}
	if m.Active() != viewstate.Sections()[0] {
		t.Fatalf("selecting should not change the active marker until the root applies it")
	}
}

func TestSetActiveMarksSection(t *testing.T) {
	sections := viewstate.Sections()
	m := NewModel("nav", sections, theme.Default().Sidebar)
	m.SetSize(26, 30)
	m.SetActive(sections[2])

	if m.Cursor() != sections[2] {
		t.Fatalf("cursor should follow the active section, got %q", m.Cursor())
	}
	view := m.View()
	if !strings.Contains(view, "● "+sections[2].Label()) {
		t.Fatalf("expected active marker in:\n%s", view)
	}
	for _, want := range []string{title, subtitle, copyright} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in:\n%s", want, view)
		}
	}
}

func TestUnknownKeyIsIgnored(t *testing.T) {
	m := NewModel("nav", viewstate.Sections(), theme.Default().Sidebar)
	if _, handled := m.HandleKey(tea.KeyPressMsg{Code: 'x', Text: "x"}); handled {
		t.Fatalf("x should not be handled")
	}
}

package eventviewer

import (
	"strings"
	"testing"
	"time"

	"github.com/muesli/reflow/ansi"
)

func plain(s string) string {
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

func TestRecordKeepsNewestFirstAndCaps(t *testing.T) {
	m := NewModel(2)
	m.Record(Transition{Event: "year:\"2024\"", Changed: true})
	m.Record(Transition{Event: "year:\"2023\"", Changed: true})
	m.Record(Transition{Event: "year:\"all\"", Changed: true})

	got := m.Transitions()
	if len(got) != 2 {
		t.Fatalf("expected 2 transitions, got %d", len(got))
	}
	if got[0].Event != `year:"all"` || got[1].Event != `year:"2023"` {
		t.Fatalf("unexpected order %q, %q", got[0].Event, got[1].Event)
	}
	if got[0].At.IsZero() {
		t.Fatalf("expected the clock to be filled")
	}
}

func TestViewShowsTransitions(t *testing.T) {
	m := NewModel(10)
	m.now = func() time.Time { return time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC) }
	m.SetSize(100, 6)
	if v := plain(m.View()); !strings.Contains(v, "Nothing applied yet") || !strings.Contains(v, "Transitions 0/10") {
		t.Fatalf("unexpected empty pane:\n%s", v)
	}

	m.Record(Transition{Component: "shelves", Event: "book:102", State: "selected:102", Changed: true})
	m.Record(Transition{Component: "root", Event: `from:"root"`})

	v := plain(m.View())
	for _, want := range []string{
		"Transitions 2/10",
		"09:30:00",
		"book:102 => selected:102",
		`from:"root" (no change)`,
	} {
		if !strings.Contains(v, want) {
			t.Fatalf("expected %q in pane:\n%s", want, v)
		}
	}
	if strings.Index(v, "(no change)") > strings.Index(v, "book:102") {
		t.Fatalf("newest transition should be on top:\n%s", v)
	}
}

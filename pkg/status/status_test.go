package status

import (
	"encoding/json"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"complete", Complete},
		{"  Complete ", Complete},
		{"in-progress", InProgress},
		{"IN_PROGRESS", InProgress},
		{"pending", Pending},
		{"", Unknown},
		{"archived", Unknown},
	}
	for _, tt := range tests {
		if got := Parse(tt.in); got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTreatIsTotal(t *testing.T) {
	seen := map[Tone]Status{}
	for _, s := range All() {
		tr := Treat(s)
		if tr.Symbol == "" {
			t.Fatalf("%s: expected a symbol", s)
		}
		if tr.Tone == ToneNeutral {
			t.Fatalf("%s: expected a non-neutral tone", s)
		}
		if prev, ok := seen[tr.Tone]; ok {
			t.Fatalf("%s shares tone with %s", s, prev)
		}
		seen[tr.Tone] = s
	}

	for _, s := range []Status{Unknown, Status(42), Parse("lost")} {
		tr := Treat(s)
		if tr.Tone != ToneNeutral {
			t.Fatalf("%d: expected neutral tone, got %v", s, tr.Tone)
		}
		if tr.Symbol != "" {
			t.Fatalf("%d: expected no symbol, got %q", s, tr.Symbol)
		}
	}
}

func TestBadge(t *testing.T) {
	if got := Treat(Pending).Badge(); got != "! pending" {
		t.Fatalf("unexpected badge %q", got)
	}
	if got := Treat(Unknown).Badge(); got != "unknown" {
		t.Fatalf("unexpected badge %q", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	type doc struct {
		Status Status `json:"status"`
	}
	var d doc
	if err := json.Unmarshal([]byte(`{"status":"in-progress"}`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.Status != InProgress {
		t.Fatalf("expected in-progress, got %v", d.Status)
	}
	out, err := json.Marshal(doc{Status: Complete})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"status":"complete"}` {
		t.Fatalf("unexpected json %s", out)
	}
}

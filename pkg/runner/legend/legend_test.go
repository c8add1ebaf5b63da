package legend

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestLegendListsEveryStatus(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	l := Legend{Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"✔ complete", "all documents archived",
		"◷ in-progress", "archiving underway",
		"! pending", "awaiting archiving",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in legend:\n%s", want, out)
		}
	}
}

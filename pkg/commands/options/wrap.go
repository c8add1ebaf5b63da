package options

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// Wrap80 wraps command help for an 80 column terminal.
func Wrap80(text string) string {
	return Wrap(text, 80)
}

// Wrap reflows each blank-line separated paragraph of text to width.
// Words longer than width are kept whole.
func Wrap(text string, width int) string {
	paragraphs := strings.Split(strings.TrimSpace(text), "\n\n")
	for i, p := range paragraphs {
		paragraphs[i] = wordwrap.String(strings.Join(strings.Fields(p), " "), width)
	}
	return strings.Join(paragraphs, "\n\n")
}

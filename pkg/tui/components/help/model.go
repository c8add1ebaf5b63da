// Package help renders the key reference overlay: the embedded key tables
// followed by a status legend built from pkg/status.
package help

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/termenv"

	"tableflip.dev/archive/pkg/status"
)

const (
	minWidth  = 32
	minHeight = 8
)

//go:embed help.md
var keysMarkdown string

// Markdown returns the full help source, status legend included.
func Markdown() string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(keysMarkdown))
	b.WriteString("\n\n## Status\n\n| Badge | Meaning |\n| --- | --- |\n")
	for _, st := range status.All() {
		fmt.Fprintf(&b, "| %s | %s |\n", status.Treat(st).Badge(), status.Meaning(st))
	}
	return b.String()
}

// Model is the help overlay: rendered markdown in a scrollable, framed viewport.
type Model struct {
	viewport      viewport.Model
	frame         lipgloss.Style
	style         string
	width, height int
	err           error
}

// New returns an overlay of at least 32x8 drawn inside frame.
func New(width, height int, frame lipgloss.Style) *Model {
	m := &Model{
		viewport: viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		frame:    frame,
		style:    markdownStyle(),
	}
	m.viewport.MouseWheelEnabled = true
	m.SetSize(width, height)
	return m
}

// Update scrolls the overlay.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return m, cmd
}

func (m *Model) View() string {
	return m.frame.Width(m.width).Height(m.height).Render(m.viewport.View())
}

// SetSize resizes the overlay and re-renders when the width changes.
func (m *Model) SetSize(width, height int) {
	width, height = max(width, minWidth), max(height, minHeight)
	if m.width == width && m.height == height {
		return
	}
	rewrap := m.width != width
	m.width, m.height = width, height

	inner := max(width-m.frame.GetHorizontalFrameSize(), 1)
	m.viewport.SetWidth(inner)
	m.viewport.SetHeight(max(height-m.frame.GetVerticalFrameSize(), 1))
	if rewrap {
		m.render(inner)
	}
}

func (m *Model) render(wrap int) {
	out, err := renderMarkdown(Markdown(), m.style, wrap)
	m.err = err
	if err != nil {
		out = "help unavailable: " + err.Error()
	}
	m.viewport.SetContent(out)
	m.viewport.SetYOffset(0)
}

func renderMarkdown(md, style string, wrap int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(wrap, 10)),
	)
	if err != nil {
		return "", err
	}
	out, err := r.Render(md)
	if err != nil {
		return "", err
	}
	// The frame owns the colors; keep only glamour's layout.
	return ansiPattern.ReplaceAllString(out, ""), nil
}

// markdownStyle follows the terminal background. It must run before the
// program takes over the terminal.
func markdownStyle() string {
	if termenv.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;:]*[A-Za-z~]`)

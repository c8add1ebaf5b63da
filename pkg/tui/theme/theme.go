package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/archive/pkg/status"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Sidebar SidebarTheme
	Header  HeaderTheme
	Filter  FilterTheme
	Shelf   ShelfTheme
	Table   TableTheme
	Footer  FooterTheme
	Modal   ModalTheme
	Status  StatusTheme
}

// SidebarTheme styles the navigation column.
type SidebarTheme struct {
	Frame     lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Copyright lipgloss.Style
}

// HeaderTheme styles the content pane heading.
type HeaderTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Hint     lipgloss.Style
}

// FilterTheme styles the search and year controls.
type FilterTheme struct {
	Frame        lipgloss.Style
	FocusedFrame lipgloss.Style
	Label        lipgloss.Style
	Year         lipgloss.Style
}

// ShelfTheme styles shelf headings and book cards.
type ShelfTheme struct {
	Heading     lipgloss.Style
	Card        lipgloss.Style
	CardFocused lipgloss.Style
	Owner       lipgloss.Style
	Count       lipgloss.Style
	Empty       lipgloss.Style
}

// TableTheme styles the document table.
type TableTheme struct {
	Border   lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
	Actions  lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// ModalTheme styles centered modal overlays (e.g., help).
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// StatusTheme holds one style per status tone.
type StatusTheme struct {
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style
	Neutral lipgloss.Style
}

// Style returns the style for a tone; unknown tones get the neutral style.
func (s StatusTheme) Style(tone status.Tone) lipgloss.Style {
	switch tone {
	case status.ToneSuccess:
		return s.Success
	case status.ToneWarning:
		return s.Warning
	case status.ToneDanger:
		return s.Danger
	default:
		return s.Neutral
	}
}

// Badge renders a status with its treatment.
func (s StatusTheme) Badge(st status.Status) string {
	tr := status.Treat(st)
	return s.Style(tr.Tone).Render(tr.Badge())
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := lipgloss.Color("33")
	muted := lipgloss.Color("244")
	border := lipgloss.Color("240")

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	return Theme{
		Sidebar: SidebarTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, true, false, false).
				BorderForeground(border).
				PaddingRight(1),
			Title:     lipgloss.NewStyle().Bold(true),
			Subtitle:  lipgloss.NewStyle().Foreground(muted),
			Copyright: lipgloss.NewStyle().Foreground(muted).Faint(true),
		},
		Header: HeaderTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(border),
			Title:    lipgloss.NewStyle().Bold(true),
			Subtitle: lipgloss.NewStyle().Foreground(muted),
			Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")).Padding(0, 1),
		},
		Filter: FilterTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(border).
				Padding(0, 1),
			FocusedFrame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(0, 1),
			Label: lipgloss.NewStyle().Foreground(muted),
			Year:  lipgloss.NewStyle().Bold(true),
		},
		Shelf: ShelfTheme{
			Heading:     lipgloss.NewStyle().Bold(true).Foreground(accent),
			Card:        card,
			CardFocused: card.BorderForeground(accent),
			Owner:       lipgloss.NewStyle().Bold(true),
			Count:       lipgloss.NewStyle().Foreground(muted),
			Empty:       lipgloss.NewStyle().Foreground(muted).Italic(true),
		},
		Table: TableTheme{
			Border:   lipgloss.NewStyle().Foreground(border),
			Header:   lipgloss.NewStyle().Bold(true).Foreground(muted).Padding(0, 1),
			Cell:     lipgloss.NewStyle().Padding(0, 1),
			Selected: lipgloss.NewStyle().Padding(0, 1).Reverse(true),
			Actions:  lipgloss.NewStyle().Foreground(accent).Padding(0, 1),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("214")),
			Error:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F5F")),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
		Status: StatusTheme{
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
			Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
			Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
			Neutral: lipgloss.NewStyle().Foreground(muted),
		},
	}
}

// Package viewstate holds the navigation, filter and selection state of the
// archive browser and derives what is visible from it.
//
// State is a plain value. Every transition returns a new State and leaves the
// receiver untouched, so callers own exactly one instance and swap it on each
// input event.
package viewstate

import (
	"fmt"
	"strings"

	"tableflip.dev/archive/pkg/catalog"
)

// Section is a sidebar navigation target.
type Section string

const (
	SectionDashboard   Section = "dashboard"
	SectionArchives    Section = "archives"
	SectionBookshelves Section = "bookshelves"
	SectionTracking    Section = "tracking"
	SectionReports     Section = "reports"
	SectionSettings    Section = "settings"
)

// AllYears is the year filter value that excludes nothing.
const AllYears = "all"

var sectionLabels = map[Section]string{
	SectionDashboard:   "Dashboard",
	SectionArchives:    "Archives",
	SectionBookshelves: "Bookshelves",
	SectionTracking:    "Status Tracking",
	SectionReports:     "Reports",
	SectionSettings:    "Settings",
}

// Sections returns the navigation targets in sidebar order.
func Sections() []Section {
	return []Section{
		SectionDashboard,
		SectionArchives,
		SectionBookshelves,
		SectionTracking,
		SectionReports,
		SectionSettings,
	}
}

// Label is the sidebar caption.
func (s Section) Label() string {
	if l, ok := sectionLabels[s]; ok {
		return l
	}
	return string(s)
}

// ParseSection converts a string to a Section or returns an error for unknown values.
func ParseSection(raw string) (Section, error) {
	s := Section(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range Sections() {
		if candidate == s {
			return candidate, nil
		}
	}
	return SectionDashboard, fmt.Errorf("viewstate: unknown section %q", raw)
}

// State is the browser's navigation and filter state.
type State struct {
	Section Section
	// Selected is a copy of the inspected book; nil while browsing shelves.
	Selected *catalog.Book
	Search   string
	Year     string
}

// New returns the state the browser starts in.
func New() State {
	return State{
		Section: SectionDashboard,
		Year:    AllYears,
	}
}

// Inspecting reports whether a book's document table is shown.
func (s State) Inspecting() bool {
	return s.Selected != nil
}

// SelectBook switches to the book's document table. Section and filters are kept.
func (s State) SelectBook(b catalog.Book) State {
	book := b
	s.Selected = &book
	return s
}

// Back leaves the document table. Only the selection is cleared.
func (s State) Back() State {
	s.Selected = nil
	return s
}

// Navigate moves to section and always exits book inspection. Filters persist.
func (s State) Navigate(section Section) State {
	s.Section = section
	s.Selected = nil
	return s
}

// WithSearch sets the owner search term.
func (s State) WithSearch(term string) State {
	s.Search = term
	return s
}

// WithYear sets the year filter; see VisibleShelves for how it matches.
func (s State) WithYear(year string) State {
	s.Year = year
	return s
}

// Visible derives the shelves to show for this state.
func (s State) Visible(shelves []catalog.Shelf) []catalog.Shelf {
	return VisibleShelves(shelves, s.Search, s.Year)
}

// String summarizes the state for logs.
func (s State) String() string {
	selected := "none"
	if s.Selected != nil {
		selected = fmt.Sprintf("%d", s.Selected.ID)
	}
	return fmt.Sprintf("section:%q selected:%s search:%q year:%q", s.Section, selected, s.Search, s.Year)
}

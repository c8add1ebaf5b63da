// Package events defines the messages components exchange with the root
// model. Components return them synchronously; the root applies each one to
// the view state before handling the next input.
package events

import (
	"fmt"

	"tableflip.dev/archive/pkg/catalog"
	"tableflip.dev/archive/pkg/viewstate"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// SectionSelectMsg is emitted when a sidebar item is activated.
type SectionSelectMsg struct {
	Component ComponentID
	Section   viewstate.Section
}

// Describe renders the event for logs.
func (m SectionSelectMsg) Describe() string {
	return fmt.Sprintf(`section:%q`, m.Section)
}

// BookSelectMsg is emitted when a book card is activated.
type BookSelectMsg struct {
	Component ComponentID
	Book      catalog.Book
}

// Describe renders the event for logs.
func (m BookSelectMsg) Describe() string {
	return fmt.Sprintf(`book:%d owner:%q`, m.Book.ID, m.Book.Owner)
}

// BookHighlightMsg is emitted when the grid cursor moves to a book.
type BookHighlightMsg struct {
	Component ComponentID
	Book      catalog.Book
}

// Describe renders the event for logs.
func (m BookHighlightMsg) Describe() string {
	return fmt.Sprintf(`book:%d owner:%q`, m.Book.ID, m.Book.Owner)
}

// BackMsg asks to leave the document table.
type BackMsg struct {
	Component ComponentID
}

// Describe renders the event for logs.
func (m BackMsg) Describe() string {
	return fmt.Sprintf(`from:%q`, m.Component)
}

// SearchChangeMsg carries the new owner search term.
type SearchChangeMsg struct {
	Component ComponentID
	Term      string
}

// Describe renders the event for logs.
func (m SearchChangeMsg) Describe() string {
	return fmt.Sprintf(`term:%q`, m.Term)
}

// YearChangeMsg carries the new year filter value.
type YearChangeMsg struct {
	Component ComponentID
	Year      string
}

// Describe renders the event for logs.
func (m YearChangeMsg) Describe() string {
	return fmt.Sprintf(`year:%q`, m.Year)
}

// Source reports the emitting component of a known event.
func Source(msg any) (ComponentID, bool) {
	switch v := msg.(type) {
	case SectionSelectMsg:
		return v.Component, true
	case BookSelectMsg:
		return v.Component, true
	case BookHighlightMsg:
		return v.Component, true
	case BackMsg:
		return v.Component, true
	case SearchChangeMsg:
		return v.Component, true
	case YearChangeMsg:
		return v.Component, true
	default:
		return "", false
	}
}

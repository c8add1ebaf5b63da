// Package app composes the catalog source and the view state into what the
// browser renders. The TUI, the CLI printers and the MCP server share it.
package app

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/archive/pkg/catalog"
	"tableflip.dev/archive/pkg/viewstate"
)

// ErrNoSource is returned when the service has no catalog configured.
var ErrNoSource = errors.New("app: no catalog source configured")

// Service provides the derived views over a catalog.
type Service struct {
	Source catalog.Source
}

// Screen is everything the content pane needs for one state.
type Screen struct {
	Title    string
	Subtitle string
	// Inspecting selects between the document table and the shelf grid.
	Inspecting bool
	Book       *catalog.Book
	Shelves    []catalog.Shelf
	Documents  []catalog.Document
}

const (
	shelvesTitle    = "Bookshelves"
	shelvesSubtitle = "Manage digital archives and documents"
)

// Screen derives the content pane for state. Nothing is cached; each call
// reads the source again.
func (s *Service) Screen(ctx context.Context, state viewstate.State) (Screen, error) {
	if s.Source == nil {
		return Screen{}, ErrNoSource
	}
	if state.Selected != nil {
		book := *state.Selected
		return Screen{
			Title:      fmt.Sprintf("Digital Book - %s", book.Owner),
			Subtitle:   fmt.Sprintf("%d documents", book.DocCount),
			Inspecting: true,
			Book:       &book,
			Documents:  s.Source.DocumentsFor(ctx, book.ID),
		}, nil
	}
	return Screen{
		Title:    shelvesTitle,
		Subtitle: shelvesSubtitle,
		Shelves:  state.Visible(s.Source.ListShelves(ctx)),
	}, nil
}

// Shelves returns every shelf in the catalog.
func (s *Service) Shelves(ctx context.Context) ([]catalog.Shelf, error) {
	if s.Source == nil {
		return nil, ErrNoSource
	}
	return s.Source.ListShelves(ctx), nil
}

// Visible filters the catalog the same way the browser does.
func (s *Service) Visible(ctx context.Context, search, year string) ([]catalog.Shelf, error) {
	shelves, err := s.Shelves(ctx)
	if err != nil {
		return nil, err
	}
	return viewstate.VisibleShelves(shelves, search, year), nil
}

// Documents lists a book's documents. Unknown ids give an empty list.
func (s *Service) Documents(ctx context.Context, bookID int) ([]catalog.Document, error) {
	if s.Source == nil {
		return nil, ErrNoSource
	}
	return s.Source.DocumentsFor(ctx, bookID), nil
}

// Book finds a book by id.
func (s *Service) Book(ctx context.Context, id int) (catalog.Book, bool, error) {
	shelves, err := s.Shelves(ctx)
	if err != nil {
		return catalog.Book{}, false, err
	}
	b, ok := catalog.FindBook(shelves, id)
	return b, ok, nil
}

// YearOptions lists the year filter values for the catalog.
func (s *Service) YearOptions(ctx context.Context) ([]string, error) {
	shelves, err := s.Shelves(ctx)
	if err != nil {
		return nil, err
	}
	return viewstate.YearOptions(shelves), nil
}

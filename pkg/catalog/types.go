// Package catalog defines the archive's shelves, books and documents and the
// read-only source they are served from.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"tableflip.dev/archive/pkg/status"
)

// Shelf is a (year, month) bucket of books.
type Shelf struct {
	ID    int    `json:"id"`
	Year  int    `json:"year"`
	Month string `json:"month"`
	Books []Book `json:"books"`
}

// Label renders the shelf heading, e.g. "January 2024".
func (s Shelf) Label() string {
	return fmt.Sprintf("%s %d", s.Month, s.Year)
}

// Book is one owner's record group.
type Book struct {
	ID       int           `json:"id"`
	Owner    string        `json:"owner"`
	DocCount int           `json:"docCount"`
	Status   status.Status `json:"status"`
}

// Document is a single archived record and where it is physically kept.
type Document struct {
	ID      int           `json:"id"`
	Name    string        `json:"name"`
	Type    string        `json:"type"`
	Status  status.Status `json:"status"`
	Cabinet string        `json:"cabinet"`
	Shelf   string        `json:"shelf"`
}

// Source serves the catalog. Implementations never fail a lookup: unknown
// ids yield empty results.
type Source interface {
	ListShelves(ctx context.Context) []Shelf
	DocumentsFor(ctx context.Context, bookID int) []Document
}

// Fixture is a complete catalog snapshot.
type Fixture struct {
	Shelves   []Shelf            `json:"shelves"`
	Documents map[int][]Document `json:"documents"`
}

// FindBook looks a book up by id across all shelves.
func FindBook(shelves []Shelf, id int) (Book, bool) {
	for _, shelf := range shelves {
		for _, b := range shelf.Books {
			if b.ID == id {
				return b, true
			}
		}
	}
	return Book{}, false
}

// Years returns the distinct shelf years, newest first.
func Years(shelves []Shelf) []int {
	seen := make(map[int]struct{}, len(shelves))
	years := make([]int, 0, len(shelves))
	for _, s := range shelves {
		if _, ok := seen[s.Year]; ok {
			continue
		}
		seen[s.Year] = struct{}{}
		years = append(years, s.Year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// Validate checks the fixture is well formed: every shelf has books, book ids
// are unique, doc counts are non-negative and document ids are unique per book.
func Validate(f Fixture) error {
	var errs []error
	books := map[int]int{}
	for _, shelf := range f.Shelves {
		if len(shelf.Books) == 0 {
			errs = append(errs, fmt.Errorf("catalog: shelf %d (%s) has no books", shelf.ID, shelf.Label()))
		}
		for _, b := range shelf.Books {
			if prev, ok := books[b.ID]; ok {
				errs = append(errs, fmt.Errorf("catalog: book %d appears on shelves %d and %d", b.ID, prev, shelf.ID))
			}
			books[b.ID] = shelf.ID
			if b.DocCount < 0 {
				errs = append(errs, fmt.Errorf("catalog: book %d has negative document count %d", b.ID, b.DocCount))
			}
		}
	}
	for bookID, docs := range f.Documents {
		ids := map[int]struct{}{}
		for _, d := range docs {
			if _, ok := ids[d.ID]; ok {
				errs = append(errs, fmt.Errorf("catalog: book %d has duplicate document %d", bookID, d.ID))
			}
			ids[d.ID] = struct{}{}
		}
	}
	return errors.Join(errs...)
}

package viewstate

import (
	"strconv"
	"strings"

	"tableflip.dev/archive/pkg/catalog"
)

// VisibleShelves filters shelves by year and books by owner.
//
// A shelf is kept when year is AllYears or equals the shelf year rendered as
// text; the comparison is on strings, so a non-numeric year matches nothing.
// A book is kept when its owner contains search, case-insensitively. Shelves
// left without books are dropped. Order is preserved and the input is not
// modified.
func VisibleShelves(shelves []catalog.Shelf, search, year string) []catalog.Shelf {
	needle := strings.ToLower(search)
	out := make([]catalog.Shelf, 0, len(shelves))
	for _, shelf := range shelves {
		if year != AllYears && strconv.Itoa(shelf.Year) != year {
			continue
		}
		books := make([]catalog.Book, 0, len(shelf.Books))
		for _, b := range shelf.Books {
			if strings.Contains(strings.ToLower(b.Owner), needle) {
				books = append(books, b)
			}
		}
		if len(books) == 0 {
			continue
		}
		kept := shelf
		kept.Books = books
		out = append(out, kept)
	}
	return out
}

// YearOptions lists the year filter values: AllYears then each shelf year,
// newest first.
func YearOptions(shelves []catalog.Shelf) []string {
	years := catalog.Years(shelves)
	opts := make([]string, 0, len(years)+1)
	opts = append(opts, AllYears)
	for _, y := range years {
		opts = append(opts, strconv.Itoa(y))
	}
	return opts
}

// NextYear returns the option after current, wrapping around. A current value
// not in options restarts at the first option.
func NextYear(options []string, current string) string {
	if len(options) == 0 {
		return AllYears
	}
	for i, opt := range options {
		if opt == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

// BookCount totals the books across shelves.
func BookCount(shelves []catalog.Shelf) int {
	n := 0
	for _, s := range shelves {
		n += len(s.Books)
	}
	return n
}

// Package mcp provides the Model Context Protocol server integration for the archive.
package mcp

import (
	"context"
	"errors"
	"strings"

	"tableflip.dev/archive/pkg/app"
	"tableflip.dev/archive/pkg/catalog"
	"tableflip.dev/archive/pkg/status"
	"tableflip.dev/archive/pkg/viewstate"
)

// ErrBookNotFound is returned when a book id is not on any shelf.
var ErrBookNotFound = errors.New("book not found")

// Service projects catalog reads into transport-friendly shapes shared by
// the MCP tools and resources.
type Service struct {
	App *app.Service
}

// NewService builds a service over src.
func NewService(src catalog.Source) *Service {
	return &Service{App: &app.Service{Source: src}}
}

// BookDTO is a transport-friendly projection of a book.
type BookDTO struct {
	ID       int    `json:"id"`
	Owner    string `json:"owner"`
	DocCount int    `json:"docCount"`
	Status   string `json:"status"`
	Badge    string `json:"badge"`
}

// ShelfDTO is a transport-friendly projection of a shelf.
type ShelfDTO struct {
	ID    int       `json:"id"`
	Year  int       `json:"year"`
	Month string    `json:"month"`
	Label string    `json:"label"`
	Books []BookDTO `json:"books"`
}

// DocumentDTO is a transport-friendly projection of a document.
type DocumentDTO struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Status  string `json:"status"`
	Badge   string `json:"badge"`
	Cabinet string `json:"cabinet"`
	Shelf   string `json:"shelf"`
}

// BookDocuments pairs a book with its stored documents. Book is nil when the
// id is not on any shelf.
type BookDocuments struct {
	Book      *BookDTO      `json:"book,omitempty"`
	Count     int           `json:"count"`
	Documents []DocumentDTO `json:"documents"`
}

// LegendEntry describes how one status is presented.
type LegendEntry struct {
	Status  string `json:"status"`
	Symbol  string `json:"symbol"`
	Tone    string `json:"tone"`
	Meaning string `json:"meaning"`
}

// ReportSectionDTO tallies one shelf.
type ReportSectionDTO struct {
	Shelf     string         `json:"shelf"`
	Books     int            `json:"books"`
	Documents int            `json:"documents"`
	ByStatus  map[string]int `json:"byStatus"`
}

// ReportDTO summarizes archival progress.
type ReportDTO struct {
	Sections  []ReportSectionDTO `json:"sections"`
	Books     int                `json:"books"`
	Documents int                `json:"documents"`
	ByStatus  map[string]int     `json:"byStatus"`
}

// ListShelves returns every shelf in catalog order.
func (s *Service) ListShelves(ctx context.Context) ([]ShelfDTO, error) {
	shelves, err := s.App.Shelves(ctx)
	if err != nil {
		return nil, err
	}
	return shelvesToDTO(shelves), nil
}

// VisibleShelves applies the browser's owner search and year filter. An
// empty year means all years.
func (s *Service) VisibleShelves(ctx context.Context, search, year string) ([]ShelfDTO, error) {
	if strings.TrimSpace(year) == "" {
		year = viewstate.AllYears
	}
	shelves, err := s.App.Visible(ctx, search, year)
	if err != nil {
		return nil, err
	}
	return shelvesToDTO(shelves), nil
}

// DocumentsFor returns the stored documents for bookID. Unknown ids give an
// empty list.
func (s *Service) DocumentsFor(ctx context.Context, bookID int) (BookDocuments, error) {
	docs, err := s.App.Documents(ctx, bookID)
	if err != nil {
		return BookDocuments{}, err
	}
	out := BookDocuments{Documents: make([]DocumentDTO, 0, len(docs))}
	for _, d := range docs {
		out.Documents = append(out.Documents, documentToDTO(d))
	}
	out.Count = len(out.Documents)
	if book, ok, err := s.App.Book(ctx, bookID); err == nil && ok {
		dto := bookToDTO(book)
		out.Book = &dto
	}
	return out, nil
}

// Book returns one book by id.
func (s *Service) Book(ctx context.Context, id int) (BookDTO, error) {
	book, ok, err := s.App.Book(ctx, id)
	if err != nil {
		return BookDTO{}, err
	}
	if !ok {
		return BookDTO{}, ErrBookNotFound
	}
	return bookToDTO(book), nil
}

// StatusLegend lists every known status with its treatment.
func (s *Service) StatusLegend() []LegendEntry {
	out := make([]LegendEntry, 0, len(status.All()))
	for _, st := range status.All() {
		tr := status.Treat(st)
		out = append(out, LegendEntry{
			Status:  st.String(),
			Symbol:  tr.Symbol,
			Tone:    tr.Tone.String(),
			Meaning: status.Meaning(st),
		})
	}
	return out
}

// Report tallies books by status per shelf.
func (s *Service) Report(ctx context.Context) (ReportDTO, error) {
	r, err := s.App.Report(ctx)
	if err != nil {
		return ReportDTO{}, err
	}
	out := ReportDTO{
		Sections:  make([]ReportSectionDTO, 0, len(r.Sections)),
		Books:     r.Books,
		Documents: r.Documents,
		ByStatus:  byStatus(r.ByStatus),
	}
	for _, section := range r.Sections {
		out.Sections = append(out.Sections, ReportSectionDTO{
			Shelf:     section.Shelf,
			Books:     section.Books,
			Documents: section.Documents,
			ByStatus:  byStatus(section.ByStatus),
		})
	}
	return out, nil
}

func byStatus(in map[status.Status]int) map[string]int {
	out := make(map[string]int, len(in))
	for st, n := range in {
		out[st.String()] = n
	}
	return out
}

func shelvesToDTO(shelves []catalog.Shelf) []ShelfDTO {
	out := make([]ShelfDTO, 0, len(shelves))
	for _, shelf := range shelves {
		dto := ShelfDTO{
			ID:    shelf.ID,
			Year:  shelf.Year,
			Month: shelf.Month,
			Label: shelf.Label(),
			Books: make([]BookDTO, 0, len(shelf.Books)),
		}
		for _, b := range shelf.Books {
			dto.Books = append(dto.Books, bookToDTO(b))
		}
		out = append(out, dto)
	}
	return out
}

func bookToDTO(b catalog.Book) BookDTO {
	return BookDTO{
		ID:       b.ID,
		Owner:    b.Owner,
		DocCount: b.DocCount,
		Status:   b.Status.String(),
		Badge:    status.Treat(b.Status).Badge(),
	}
}

func documentToDTO(d catalog.Document) DocumentDTO {
	return DocumentDTO{
		ID:      d.ID,
		Name:    d.Name,
		Type:    d.Type,
		Status:  d.Status.String(),
		Badge:   status.Treat(d.Status).Badge(),
		Cabinet: d.Cabinet,
		Shelf:   d.Shelf,
	}
}

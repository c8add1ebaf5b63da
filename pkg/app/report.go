package app

import (
	"context"

	"tableflip.dev/archive/pkg/status"
)

// ReportSection tallies one shelf's books by status.
type ReportSection struct {
	Shelf     string
	Books     int
	Documents int
	ByStatus  map[status.Status]int
}

// ReportResult summarizes archival progress across the catalog.
type ReportResult struct {
	Sections  []ReportSection
	Books     int
	Documents int
	ByStatus  map[status.Status]int
}

// Report counts books per status for every shelf, in catalog order.
// Documents are the books' declared counts, not the stored document rows.
func (s *Service) Report(ctx context.Context) (ReportResult, error) {
	shelves, err := s.Shelves(ctx)
	if err != nil {
		return ReportResult{}, err
	}
	result := ReportResult{ByStatus: map[status.Status]int{}}
	for _, shelf := range shelves {
		section := ReportSection{
			Shelf:    shelf.Label(),
			ByStatus: map[status.Status]int{},
		}
		for _, b := range shelf.Books {
			section.Books++
			section.Documents += b.DocCount
			section.ByStatus[b.Status]++
			result.ByStatus[b.Status]++
		}
		result.Books += section.Books
		result.Documents += section.Documents
		result.Sections = append(result.Sections, section)
	}
	return result, nil
}

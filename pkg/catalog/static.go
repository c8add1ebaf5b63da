package catalog

import "context"

// Static serves a Fixture from memory.
type Static struct {
	fixture Fixture
}

var _ Source = (*Static)(nil)

// NewStatic wraps a fixture. The fixture is copied so later changes by the
// caller are not observed.
func NewStatic(f Fixture) *Static {
	docs := make(map[int][]Document, len(f.Documents))
	for id, d := range f.Documents {
		docs[id] = append([]Document(nil), d...)
	}
	return &Static{fixture: Fixture{
		Shelves:   CloneShelves(f.Shelves),
		Documents: docs,
	}}
}

// ListShelves returns the shelves in authored order.
func (s *Static) ListShelves(_ context.Context) []Shelf {
	return CloneShelves(s.fixture.Shelves)
}

// DocumentsFor returns the book's documents, or an empty slice.
func (s *Static) DocumentsFor(_ context.Context, bookID int) []Document {
	docs, ok := s.fixture.Documents[bookID]
	if !ok {
		return []Document{}
	}
	return append([]Document{}, docs...)
}

// Snapshot returns a copy of the full fixture.
func (s *Static) Snapshot() Fixture {
	return NewStatic(s.fixture).fixture
}

// CloneShelves deep-copies shelves and their book slices.
func CloneShelves(in []Shelf) []Shelf {
	out := make([]Shelf, len(in))
	for i, shelf := range in {
		out[i] = shelf
		out[i].Books = append([]Book(nil), shelf.Books...)
	}
	return out
}

package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/archive/pkg/status"
)

func TestDefaultFixtureIsValid(t *testing.T) {
	if err := Validate(DefaultFixture()); err != nil {
		t.Fatalf("default fixture invalid: %v", err)
	}
}

func TestListShelvesKeepsAuthoredOrder(t *testing.T) {
	shelves := Default().ListShelves(context.Background())
	var got []string
	for _, s := range shelves {
		got = append(got, s.Label())
	}
	want := []string{"January 2024", "February 2024", "December 2023"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("shelf order mismatch (-want +got):\n%s", diff)
	}
}

func TestListShelvesReturnsCopies(t *testing.T) {
	src := Default()
	ctx := context.Background()
	shelves := src.ListShelves(ctx)
	shelves[0].Books[0].Owner = "Changed"
	shelves[0].Books = nil

	again := src.ListShelves(ctx)
	if again[0].Books[0].Owner != "Maria Santos" {
		t.Fatalf("store mutated through returned slice: %q", again[0].Books[0].Owner)
	}
}

func TestDocumentsFor(t *testing.T) {
	src := Default()
	ctx := context.Background()

	docs := src.DocumentsFor(ctx, 101)
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents for 101, got %d", len(docs))
	}
	if docs[2].Name != "Tax Records" || docs[2].Status != status.Pending {
		t.Fatalf("unexpected third document: %+v", docs[2])
	}

	for _, id := range []int{201, 999, 0, -1} {
		got := src.DocumentsFor(ctx, id)
		if got == nil {
			t.Fatalf("book %d: expected empty slice, got nil", id)
		}
		if len(got) != 0 {
			t.Fatalf("book %d: expected no documents, got %d", id, len(got))
		}
	}
}

func TestFindBookAndYears(t *testing.T) {
	shelves := Default().ListShelves(context.Background())
	b, ok := FindBook(shelves, 301)
	if !ok || b.Owner != "Roberto Cruz" {
		t.Fatalf("FindBook(301) = %+v, %t", b, ok)
	}
	if _, ok := FindBook(shelves, 7); ok {
		t.Fatalf("expected book 7 to be missing")
	}
	if diff := cmp.Diff([]int{2024, 2023}, Years(shelves)); diff != "" {
		t.Fatalf("years mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	f := Fixture{
		Shelves: []Shelf{
			{ID: 1, Year: 2024, Month: "March"},
			{ID: 2, Year: 2024, Month: "April", Books: []Book{{ID: 5, DocCount: -1}}},
			{ID: 3, Year: 2024, Month: "May", Books: []Book{{ID: 5}}},
		},
		Documents: map[int][]Document{
			5: {{ID: 1}, {ID: 1}},
		},
	}
	err := Validate(f)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{"has no books", "appears on shelves 2 and 3", "negative document count", "duplicate document 1"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}
}

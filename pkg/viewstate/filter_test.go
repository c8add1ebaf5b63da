package viewstate

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/archive/pkg/catalog"
	"tableflip.dev/archive/pkg/status"
)

func sampleShelves() []catalog.Shelf {
	return []catalog.Shelf{
		{
			ID: 1, Year: 2024, Month: "January",
			Books: []catalog.Book{
				{ID: 101, Owner: "Maria Santos", DocCount: 12, Status: status.Complete},
				{ID: 102, Owner: "Juan Dela Cruz", DocCount: 8, Status: status.Pending},
			},
		},
		{
			ID: 3, Year: 2023, Month: "December",
			Books: []catalog.Book{
				{ID: 301, Owner: "Roberto Cruz", DocCount: 20, Status: status.Complete},
			},
		},
	}
}

type shelfView struct {
	Label  string
	Owners []string
}

func summarize(shelves []catalog.Shelf) []shelfView {
	out := make([]shelfView, 0, len(shelves))
	for _, s := range shelves {
		v := shelfView{Label: s.Label()}
		for _, b := range s.Books {
			v.Owners = append(v.Owners, b.Owner)
		}
		out = append(out, v)
	}
	return out
}

func TestVisibleShelvesScenarios(t *testing.T) {
	tests := []struct {
		name   string
		search string
		year   string
		want   []shelfView
	}{
		{
			name:   "cruz across shelves",
			search: "cruz",
			year:   AllYears,
			want: []shelfView{
				{Label: "January 2024", Owners: []string{"Juan Dela Cruz"}},
				{Label: "December 2023", Owners: []string{"Roberto Cruz"}},
			},
		},
		{
			name:   "year 2024 drops 2023 shelf",
			search: "",
			year:   "2024",
			want: []shelfView{
				{Label: "January 2024", Owners: []string{"Maria Santos", "Juan Dela Cruz"}},
			},
		},
		{
			name:   "year and search combine",
			search: "cruz",
			year:   "2024",
			want: []shelfView{
				{Label: "January 2024", Owners: []string{"Juan Dela Cruz"}},
			},
		},
		{
			name:   "year 2023 ignores name match elsewhere",
			search: "maria",
			year:   "2023",
			want:   []shelfView{},
		},
		{
			name:   "non numeric year matches nothing",
			search: "",
			year:   "twenty",
			want:   []shelfView{},
		},
		{
			name:   "padded year is not trimmed",
			search: "",
			year:   " 2024",
			want:   []shelfView{},
		},
		{
			name:   "no owner matches",
			search: "zzz",
			year:   AllYears,
			want:   []shelfView{},
		},
		{
			name:   "empty search keeps all",
			search: "",
			year:   AllYears,
			want: []shelfView{
				{Label: "January 2024", Owners: []string{"Maria Santos", "Juan Dela Cruz"}},
				{Label: "December 2023", Owners: []string{"Roberto Cruz"}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summarize(VisibleShelves(sampleShelves(), tt.search, tt.year))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("visible shelves mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVisibleShelvesNeverEmpty(t *testing.T) {
	shelves := catalog.Default().ListShelves(context.Background())
	for _, term := range []string{"", "a", "cruz", "z", "Santos", "  ", "e"} {
		for _, year := range []string{AllYears, "2024", "2023", "1999"} {
			for _, s := range VisibleShelves(shelves, term, year) {
				if len(s.Books) == 0 {
					t.Fatalf("search %q year %q: shelf %s has no books", term, year, s.Label())
				}
			}
		}
	}
}

func TestVisibleShelvesCaseInsensitive(t *testing.T) {
	shelves := catalog.Default().ListShelves(context.Background())
	lower := VisibleShelves(shelves, "maria", AllYears)
	upper := VisibleShelves(shelves, "MARIA", AllYears)
	if diff := cmp.Diff(lower, upper); diff != "" {
		t.Fatalf("case changed results (-lower +upper):\n%s", diff)
	}
	if len(lower) != 1 || lower[0].Books[0].Owner != "Maria Santos" {
		t.Fatalf("unexpected result %+v", lower)
	}
}

func TestAllYearsIsIdentityOverYears(t *testing.T) {
	shelves := catalog.Default().ListShelves(context.Background())
	got := VisibleShelves(shelves, "", AllYears)
	if diff := cmp.Diff(shelves, got); diff != "" {
		t.Fatalf("all years excluded shelves (-want +got):\n%s", diff)
	}
}

func TestVisibleShelvesIdempotent(t *testing.T) {
	shelves := catalog.Default().ListShelves(context.Background())
	for _, year := range []string{AllYears, "2024", "2023"} {
		once := VisibleShelves(shelves, "a", year)
		twice := VisibleShelves(once, "a", year)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Fatalf("year %q not idempotent (-once +twice):\n%s", year, diff)
		}
	}
}

func TestVisibleShelvesDoesNotMutateInput(t *testing.T) {
	shelves := sampleShelves()
	before := catalog.CloneShelves(shelves)
	_ = VisibleShelves(shelves, "cruz", AllYears)
	if diff := cmp.Diff(before, shelves); diff != "" {
		t.Fatalf("input mutated (-before +after):\n%s", diff)
	}
}

func TestYearOptions(t *testing.T) {
	shelves := catalog.Default().ListShelves(context.Background())
	opts := YearOptions(shelves)
	if diff := cmp.Diff([]string{AllYears, "2024", "2023"}, opts); diff != "" {
		t.Fatalf("year options mismatch (-want +got):\n%s", diff)
	}
	if got := NextYear(opts, AllYears); got != "2024" {
		t.Fatalf("NextYear(all) = %q", got)
	}
	if got := NextYear(opts, "2023"); got != AllYears {
		t.Fatalf("NextYear wraps to %q", got)
	}
	if got := NextYear(opts, "bogus"); got != AllYears {
		t.Fatalf("NextYear(bogus) = %q", got)
	}
	if got := NextYear(nil, "2024"); got != AllYears {
		t.Fatalf("NextYear(nil) = %q", got)
	}
}

package viewstate

import (
	"testing"

	"tableflip.dev/archive/pkg/catalog"
	"tableflip.dev/archive/pkg/status"
)

func TestNewState(t *testing.T) {
	s := New()
	if s.Section != SectionDashboard {
		t.Fatalf("expected dashboard, got %q", s.Section)
	}
	if s.Inspecting() {
		t.Fatalf("expected no selection")
	}
	if s.Search != "" || s.Year != AllYears {
		t.Fatalf("unexpected filters %q/%q", s.Search, s.Year)
	}
}

func TestSelectThenBackKeepsFilters(t *testing.T) {
	book := catalog.Book{ID: 102, Owner: "Juan Dela Cruz", DocCount: 8, Status: status.Pending}
	start := New().Navigate(SectionBookshelves).WithSearch("cruz").WithYear("2024")

	inspecting := start.SelectBook(book)
	if !inspecting.Inspecting() {
		t.Fatalf("expected inspection mode")
	}
	if inspecting.Selected.ID != 102 {
		t.Fatalf("unexpected selection %+v", inspecting.Selected)
	}
	if inspecting.Section != SectionBookshelves {
		t.Fatalf("selection changed section to %q", inspecting.Section)
	}
	if start.Inspecting() {
		t.Fatalf("transition mutated the receiver")
	}

	back := inspecting.Back()
	if back.Inspecting() {
		t.Fatalf("expected back to clear the selection")
	}
	if back.Search != "cruz" || back.Year != "2024" || back.Section != SectionBookshelves {
		t.Fatalf("back changed state: %s", back)
	}
}

func TestSelectedBookIsACopy(t *testing.T) {
	book := catalog.Book{ID: 1, Owner: "Ana Reyes"}
	s := New().SelectBook(book)
	book.Owner = "Someone Else"
	if s.Selected.Owner != "Ana Reyes" {
		t.Fatalf("selection aliases caller value: %q", s.Selected.Owner)
	}
}

func TestNavigateClearsSelectionOnly(t *testing.T) {
	s := New().WithSearch("maria").WithYear("2023").SelectBook(catalog.Book{ID: 101})
	for _, section := range Sections() {
		next := s.Navigate(section)
		if next.Inspecting() {
			t.Fatalf("%s: selection survived navigation", section)
		}
		if next.Section != section {
			t.Fatalf("expected section %q, got %q", section, next.Section)
		}
		if next.Search != "maria" || next.Year != "2023" {
			t.Fatalf("%s: navigation cleared filters: %s", section, next)
		}
	}
}

func TestParseSection(t *testing.T) {
	got, err := ParseSection(" Reports ")
	if err != nil || got != SectionReports {
		t.Fatalf("ParseSection = %q, %v", got, err)
	}
	if _, err := ParseSection("inbox"); err == nil {
		t.Fatalf("expected error for unknown section")
	}
	if SectionTracking.Label() != "Status Tracking" {
		t.Fatalf("unexpected label %q", SectionTracking.Label())
	}
}

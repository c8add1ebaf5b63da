package catalog

import "tableflip.dev/archive/pkg/status"

// DefaultFixture is the catalog compiled into the binary.
func DefaultFixture() Fixture {
	return Fixture{
		Shelves: []Shelf{
			{
				ID:    1,
				Year:  2024,
				Month: "January",
				Books: []Book{
					{ID: 101, Owner: "Maria Santos", DocCount: 12, Status: status.Complete},
					{ID: 102, Owner: "Juan Dela Cruz", DocCount: 8, Status: status.Pending},
					{ID: 103, Owner: "Ana Reyes", DocCount: 15, Status: status.Complete},
				},
			},
			{
				ID:    2,
				Year:  2024,
				Month: "February",
				Books: []Book{
					{ID: 201, Owner: "Pedro Garcia", DocCount: 10, Status: status.InProgress},
					{ID: 202, Owner: "Carmen Lopez", DocCount: 6, Status: status.Complete},
				},
			},
			{
				ID:    3,
				Year:  2023,
				Month: "December",
				Books: []Book{
					{ID: 301, Owner: "Roberto Cruz", DocCount: 20, Status: status.Complete},
					{ID: 302, Owner: "Elena Martinez", DocCount: 9, Status: status.Complete},
				},
			},
		},
		Documents: map[int][]Document{
			101: {
				{ID: 1, Name: "Birth Certificate", Type: "PDF", Status: status.Complete, Cabinet: "A-12", Shelf: "3"},
				{ID: 2, Name: "Marriage Contract", Type: "PDF", Status: status.Complete, Cabinet: "A-12", Shelf: "3"},
				{ID: 3, Name: "Tax Records", Type: "XLSX", Status: status.Pending, Cabinet: "B-05", Shelf: "2"},
			},
			102: {
				{ID: 1, Name: "Employment Records", Type: "PDF", Status: status.InProgress, Cabinet: "C-08", Shelf: "1"},
				{ID: 2, Name: "Property Deed", Type: "PDF", Status: status.Complete, Cabinet: "A-15", Shelf: "4"},
			},
		},
	}
}

// Default returns a Source over the compiled-in catalog.
func Default() *Static {
	return NewStatic(DefaultFixture())
}

// Package printers renders catalog data for non-interactive output.
package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/archive/pkg/app"
	"tableflip.dev/archive/pkg/catalog"
	"tableflip.dev/archive/pkg/status"
)

type PrettyPrint struct {
	// ShowID prefixes every book with its catalog id.
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintf(pp.out(), " %s\n", noun)
	default:
		_, _ = c.Fprintf(pp.out(), " %ss\n", noun)
	}
}

// Badge colors a status by its tone.
func Badge(s status.Status) string {
	tr := status.Treat(s)
	return toneColor(tr.Tone).Sprint(tr.Badge())
}

func toneColor(t status.Tone) *color.Color {
	switch t {
	case status.ToneSuccess:
		return color.New(color.FgGreen)
	case status.ToneWarning:
		return color.New(color.FgYellow)
	case status.ToneDanger:
		return color.New(color.FgRed)
	default:
		return color.New(color.Faint)
	}
}

// Shelves prints each shelf heading followed by its books.
func (pp *PrettyPrint) Shelves(shelves []catalog.Shelf) {
	if len(shelves) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " No bookshelves match the current filters.\n\n")
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	for _, shelf := range shelves {
		pp.TitleWithCount(shelf.Label(), len(shelf.Books), "book")
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, b := range shelf.Books {
			owner := b.Owner
			if pp.ShowID {
				owner = y.Sprintf("%-5d", b.ID) + owner
			}
			tbl.AddRow(owner, Badge(b.Status), fmt.Sprintf("%d documents", b.DocCount))
		}
		_, _ = fmt.Fprintln(pp.out(), tbl)
		pp.NewLine()
	}
}

// Documents prints the document table for one book. With no documents only
// the header row is printed.
func (pp *PrettyPrint) Documents(book catalog.Book, docs []catalog.Document) {
	pp.Title(fmt.Sprintf("Digital Book - %s", book.Owner))
	_, _ = color.New(color.Faint).Fprintf(pp.out(), "%d documents\n\n", book.DocCount)

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(
		bold.Sprint("Document Name"),
		bold.Sprint("Type"),
		bold.Sprint("Status"),
		bold.Sprint("Cabinet"),
		bold.Sprint("Shelf"),
	)
	for _, d := range docs {
		tbl.AddRow(d.Name, d.Type, Badge(d.Status), d.Cabinet, d.Shelf)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Report prints per-shelf status totals followed by the catalog totals.
func (pp *PrettyPrint) Report(r app.ReportResult) {
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	header := []interface{}{bold.Sprint("Shelf"), bold.Sprint("Books"), bold.Sprint("Documents")}
	for _, s := range status.All() {
		header = append(header, bold.Sprint(Badge(s)))
	}
	tbl.AddRow(header...)
	for _, section := range r.Sections {
		tbl.AddRow(reportRow(section.Shelf, section.Books, section.Documents, section.ByStatus)...)
	}
	tbl.AddRow(reportRow(bold.Sprint("Total"), r.Books, r.Documents, r.ByStatus)...)
	tbl.RightAlign(1)
	tbl.RightAlign(2)

	pp.Title("Archive Report")
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

func reportRow(label string, books, docs int, by map[status.Status]int) []interface{} {
	row := []interface{}{label, books, docs}
	for _, s := range status.All() {
		row = append(row, by[s])
	}
	return row
}

// Package legend provides CLI helpers to display the status legend.
package legend

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/archive/pkg/printers"
	"tableflip.dev/archive/pkg/status"
)

// Legend prints each archival status with its badge and meaning.
type Legend struct {
	// Out defaults to color.Output.
	Out io.Writer
}

// Do renders the legend.
func (l *Legend) Do(ctx context.Context) error {
	out := l.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintln(out, "")
	l.Table(ctx, out, status.All())
	_, _ = fmt.Fprintln(out, "")
	return nil
}

// Table renders one row per status.
func (l *Legend) Table(_ context.Context, out io.Writer, statuses []status.Status) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("       Status"), bold.Sprint("Meaning"))
	for _, s := range statuses {
		tbl.AddRow(printers.Badge(s), status.Meaning(s))
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
}

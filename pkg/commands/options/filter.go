package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/archive/pkg/viewstate"
)

// FilterOptions mirror the browser's owner search and year selector.
type FilterOptions struct {
	Search string
	Year   string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Case-insensitive substring of the owner name.")
	cmd.Flags().StringVarP(&o.Year, "year", "y", viewstate.AllYears,
		`Shelf year, or "all".`)
}

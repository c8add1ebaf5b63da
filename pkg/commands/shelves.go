package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/archive/pkg/commands/options"
	"tableflip.dev/archive/pkg/printers"
)

func addShelves(topLevel *cobra.Command, s *session) {
	oo := &options.OutputOptions{}
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "shelves",
		Aliases: []string{"ls"},
		Short:   "List bookshelves and their books",
		Example: `
archive shelves
archive shelves --search cruz
archive shelves --year 2024 --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := s.service()
			if err != nil {
				return oo.HandleError(err)
			}
			shelves, err := svc.Visible(cmd.Context(), fo.Search, fo.Year)
			if err != nil {
				return oo.HandleError(err)
			}
			if oo.JSON {
				return oo.Print(cmd.OutOrStdout(), shelves)
			}
			pp := printers.PrettyPrint{ShowID: io.ShowID, Out: cmd.OutOrStdout()}
			pp.Shelves(shelves)
			return nil
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

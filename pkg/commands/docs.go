package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/archive/pkg/catalog"
	"tableflip.dev/archive/pkg/commands/options"
	"tableflip.dev/archive/pkg/printers"
)

func addDocs(topLevel *cobra.Command, s *session) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "docs <book-id>",
		Short: "Show the documents filed for a book",
		Example: `
archive docs 101
archive docs 102 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return oo.HandleError(fmt.Errorf("book id must be a number, got %q", args[0]))
			}
			svc, err := s.service()
			if err != nil {
				return oo.HandleError(err)
			}
			book, ok, err := svc.Book(cmd.Context(), id)
			if err != nil {
				return oo.HandleError(err)
			}
			if !ok {
				return oo.HandleError(fmt.Errorf("book %d is not on any shelf", id))
			}
			docs, err := svc.Documents(cmd.Context(), id)
			if err != nil {
				return oo.HandleError(err)
			}
			if oo.JSON {
				return oo.Print(cmd.OutOrStdout(), struct {
					Book      catalog.Book       `json:"book"`
					Documents []catalog.Document `json:"documents"`
				}{book, docs})
			}
			pp := printers.PrettyPrint{Out: cmd.OutOrStdout()}
			pp.Documents(book, docs)
			return nil
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/archive/pkg/commands/options"
	"tableflip.dev/archive/pkg/printers"
)

func addReport(topLevel *cobra.Command, s *session) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Count books by archival status for every shelf",
		Example: `
archive report
archive report --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := s.service()
			if err != nil {
				return oo.HandleError(err)
			}
			result, err := svc.Report(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			if oo.JSON {
				return oo.Print(cmd.OutOrStdout(), result)
			}
			pp := printers.PrettyPrint{Out: cmd.OutOrStdout()}
			pp.Report(result)
			return nil
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

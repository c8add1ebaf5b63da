package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/archive/pkg/runner/legend"
)

func addLegend(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "legend",
		Aliases: []string{"key"},
		Short:   "Print the archival statuses and what they mean",
		Example: `
archive legend
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l := legend.Legend{Out: cmd.OutOrStdout()}
			return l.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

package commands

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	teaui "tableflip.dev/archive/pkg/tui/app"
)

func addUI(topLevel *cobra.Command, s *session) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
archive ui
archive ui --catalog ~/archive
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout.Fd()) {
				return errors.New("ui needs an interactive terminal; try 'archive shelves' instead")
			}
			svc, err := s.service()
			if err != nil {
				return err
			}
			return teaui.Run(cmd.Context(), svc, s.log)
		},
	}

	topLevel.AddCommand(cmd)
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tableflip.dev/archive/pkg/catalog"
	"tableflip.dev/archive/pkg/commands/options"
	"tableflip.dev/archive/pkg/store"
)

func addExport(topLevel *cobra.Command, s *session) {
	var to string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the built-in catalog to a directory",
		Long: options.Wrap80(`Export writes the built-in catalog as a diskv directory that --catalog can
read back. The directory must be missing, empty, or a previous export; a
previous export is replaced and other files are left alone.`),
		Example: `
archive export --to ~/archive
archive --catalog ~/archive shelves
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			dir := strings.TrimSpace(to)
			if dir == "" {
				return errors.New("--to is required")
			}
			if err := store.Export(dir, catalog.DefaultFixture()); err != nil {
				return err
			}
			s.log.Info("catalog exported", zap.String("path", dir))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Catalog exported to %s\n", dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "directory to write the catalog to")
	topLevel.AddCommand(cmd)
}

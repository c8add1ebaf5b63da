// Package commands wires the archive CLI.
package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"tableflip.dev/archive/pkg/app"
	"tableflip.dev/archive/pkg/catalog"
	"tableflip.dev/archive/pkg/commands/options"
	"tableflip.dev/archive/pkg/logging"
	"tableflip.dev/archive/pkg/store"
)

// session holds what every subcommand resolves before it runs.
type session struct {
	v   *viper.Viper
	cfg store.Config
	log *zap.Logger
}

func (s *session) source() (catalog.Source, error) {
	return store.Load(s.cfg, s.log)
}

func (s *session) service() (*app.Service, error) {
	src, err := s.source()
	if err != nil {
		return nil, err
	}
	return &app.Service{Source: src}, nil
}

// New returns the archive root command with every subcommand registered.
func New() *cobra.Command {
	return newWithViper(viper.New())
}

func newWithViper(v *viper.Viper) *cobra.Command {
	s := &session{v: v, log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "archive",
		Short: options.Wrap80("Browse digital archive bookshelves and their filed documents on the command line."),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := store.LoadConfig(s.v)
			if err != nil {
				return err
			}
			s.cfg = cfg
			log, err := logging.New(cfg.LogFile(), cfg.Verbose())
			if err != nil {
				return err
			}
			s.log = log.With(zap.String("command", cmd.Name()))
			s.log.Debug("config loaded",
				zap.String("catalog", cfg.CatalogPath()),
				zap.Bool("verbose", cfg.Verbose()),
			)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = s.log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(store.KeyCatalog, "", "Directory of an exported catalog. Empty uses the built-in catalog.")
	flags.String(store.KeyLogFile, "", "Write JSON logs to this file.")
	flags.BoolP(store.KeyVerbose, "v", false, "Log at debug level.")
	for _, key := range []string{store.KeyCatalog, store.KeyLogFile, store.KeyVerbose} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}

	addCommands(cmd, s)
	return cmd
}

func addCommands(topLevel *cobra.Command, s *session) {
	addUI(topLevel, s)
	addShelves(topLevel, s)
	addDocs(topLevel, s)
	addLegend(topLevel)
	addReport(topLevel, s)
	addExport(topLevel, s)
	addMCP(topLevel, s)
	addVersion(topLevel)
	addCompletions(topLevel)
}

package cli

import (
	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations for the configured store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// newApp применяет миграции при открытии хранилища.
			a, err := newApp(cmd.Context(), opts.cfg, opts.log, nil)
			if err != nil {
				return err
			}
			a.Close()
			opts.log.Info("migrations applied", "driver", opts.cfg.Store.Driver)
			return nil
		},
	}
}

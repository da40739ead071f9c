package cli

import (
	"log/slog"

	"github.com/Spok95/project-assistant/internal/config"
	"github.com/Spok95/project-assistant/internal/infra/logger"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string

	cfg config.Config
	log *slog.Logger
}

// NewRootCmd собирает дерево команд: serve, migrate, estimate, user, inventory.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "assistant",
		Short:         "Construction assistant: plaster and paint estimates, inventory, projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			opts.log = logger.NewWithWriter(cfg.App.Env, cmd.ErrOrStderr())
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "config/example.yaml", "Path to config file")

	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newMigrateCmd(opts))
	root.AddCommand(newEstimateCmd(opts))
	root.AddCommand(newUserCmd(opts))
	root.AddCommand(newInventoryCmd(opts))
	return root
}

// Execute запускает CLI с аргументами процесса.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		return err
	}
	return nil
}

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/tilepath/internal/config"
	"github.com/katalvlaran/tilepath/internal/logging"
)

// app carries state resolved before a subcommand runs.
type app struct {
	flags  GlobalFlags
	cfg    *config.Config
	logger *zap.Logger
}

// newRootCmd assembles the command tree.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "tilepath",
		Short: "Build tile-grid navigation graphs and find paths on them",
		Long: `tilepath turns a walkable-tile map into a persisted navigation graph
and answers A* path queries against it.

Settings come from --config (YAML), TILEPATH_* environment variables
and flags, flags taking precedence.`,
		PersistentPreRunE: a.load,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	RegisterGlobalFlags(root, &a.flags)

	root.AddCommand(a.buildCmd())
	root.AddCommand(a.pathCmd())
	root.AddCommand(a.inspectCmd())

	return root
}

// Execute runs the root command with signal handling.
func Execute(ctx context.Context, args []string) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// load resolves configuration and the logger for the running command.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.flags.ConfigFile, cmd.Flags())
	if err != nil {
		return err
	}
	if a.flags.Verbose {
		cfg.Log.Level, cfg.Log.Format = "debug", "console"
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger.With(zap.String("command", cmd.Name()))

	return nil
}

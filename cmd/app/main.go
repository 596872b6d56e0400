package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/AKumarKaushik/usersystem/internal/config"
	"github.com/AKumarKaushik/usersystem/internal/demo"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("usersystem failed", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var executionLog bool

	cmd := &cobra.Command{
		Use:   "usersystem",
		Short: "Runs the user system walkthrough",
		Long: `Builds an admin and a regular user, streams them from the repository,
looks up a missing user and finishes with the admin-only delete. Usage:

	usersystem [--exec-log=false]
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cmd.Flags().Changed("exec-log") {
				cfg.Logging.ExecutionLog = executionLog
			}

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.Logging.Level}))
			slog.SetDefault(logger)
			logger.Debug("starting", slog.String("app", cfg.App.Info().AppName), slog.String("version", cfg.App.Info().Version))

			return demo.Run(cmd.Context(), cmd.OutOrStdout(), cfg, logger)
		},
	}

	cmd.Flags().BoolVar(&executionLog, "exec-log", true, "print a notice before gated operations run (overrides USERSYSTEM_EXEC_LOG)")

	return cmd
}

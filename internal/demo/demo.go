// Package demo runs the user system walkthrough end to end and prints each
// step to the given writer.
package demo

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/AKumarKaushik/usersystem/internal/config"
	"github.com/AKumarKaushik/usersystem/internal/decorator"
	"github.com/AKumarKaushik/usersystem/internal/domain"
	"github.com/AKumarKaushik/usersystem/internal/repository/memory"
	"github.com/AKumarKaushik/usersystem/internal/service"
)

const missingUserID = 99

// Run executes the walkthrough once, timed as "main".
func Run(ctx context.Context, out io.Writer, cfg *config.Config, logger *slog.Logger) error {
	run := decorator.TimeExecution(out, "main", decorator.Action(func(ctx context.Context) error {
		return walkthrough(ctx, out, cfg, logger)
	}))

	_, err := run(ctx)
	return err
}

func walkthrough(ctx context.Context, out io.Writer, cfg *config.Config, logger *slog.Logger) error {
	admin := domain.NewAdminUser(1, "Akash", "akash@test.com")
	user, err := domain.ParseRegularUser("2,Rahul,rahul@test.com")
	if err != nil {
		return fmt.Errorf("parse regular user: %w", err)
	}

	fmt.Fprintln(out, admin)
	fmt.Fprintf(out, "%#v\n", user)
	fmt.Fprintln(out, "Active users:", domain.ActiveUserCount())

	fmt.Fprintln(out, "Email valid:", domain.IsValidEmail(user.Email()))
	fmt.Fprintln(out, "Name length:", admin.NameLength())
	fmt.Fprintln(out, "Callable:", admin.Invoke())

	users := service.NewUserService(memory.NewUserRepository(), out,
		service.WithExecutionLog(cfg.Logging.ExecutionLog),
		service.WithLogger(logger),
	)
	if err := users.Register(ctx, admin, user); err != nil {
		return err
	}
	for u := range users.Stream(ctx) {
		fmt.Fprintln(out, "Streamed:", u)
	}

	users.FindUser(ctx, missingUserID)

	info := cfg.App.Info()
	fmt.Fprintf(out, "Config: %s v%s\n", info.AppName, info.Version)

	return users.DeleteUser(ctx, admin)
}

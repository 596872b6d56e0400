package service

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/AKumarKaushik/usersystem/internal/decorator"
	"github.com/AKumarKaushik/usersystem/internal/domain"
	"github.com/AKumarKaushik/usersystem/internal/repository"
)

type userService struct {
	userRepo     repository.UserRepository
	out          io.Writer
	executionLog bool
	logger       *slog.Logger
}

type Option func(*userService)

// WithExecutionLog toggles the "[LOG] Executing ..." notice on gated operations.
func WithExecutionLog(enabled bool) Option {
	return func(s *userService) {
		s.executionLog = enabled
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *userService) {
		s.logger = logger
	}
}

// NewUserService creates a UserService writing console notices to out
func NewUserService(userRepo repository.UserRepository, out io.Writer, opts ...Option) UserService {
	s := &userService{
		userRepo:     userRepo,
		out:          out,
		executionLog: true,
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *userService) Register(ctx context.Context, users ...domain.User) error {
	for _, user := range users {
		if err := s.userRepo.Add(ctx, user); err != nil {
			return fmt.Errorf("register user: %w", err)
		}
		s.logger.DebugContext(ctx, "user registered",
			slog.Int("id", user.ID()),
			slog.String("role", string(user.Role())),
		)
	}
	return nil
}

func (s *userService) Stream(ctx context.Context) iter.Seq[domain.User] {
	return s.userRepo.Stream(ctx)
}

func (s *userService) FindUser(ctx context.Context, id int) (domain.User, bool) {
	user, ok := FindUser(s.out, s.userRepo.Stream(ctx), id)
	if !ok {
		s.logger.DebugContext(ctx, "user lookup missed", slog.Int("id", id))
	}
	return user, ok
}

func (s *userService) DeleteUser(ctx context.Context, admin *domain.AdminUser) error {
	deleteUser := decorator.RequireAdmin(admin,
		decorator.LogExecution(s.out, "delete_user", s.executionLog,
			decorator.Action(func(context.Context) error {
				return admin.DeleteUser(s.out)
			}),
		),
	)

	if _, err := deleteUser(ctx); err != nil {
		s.logger.WarnContext(ctx, "delete_user failed", slog.Int("caller", admin.ID()), slog.Any("error", err))
		return err
	}
	return nil
}

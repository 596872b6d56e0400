package service

import (
	"context"
	"iter"

	"github.com/AKumarKaushik/usersystem/internal/domain"
)

type UserService interface {
	// Register adds users to the repository in the given order
	Register(ctx context.Context, users ...domain.User) error

	// Stream lazily yields registered users in insertion order
	Stream(ctx context.Context) iter.Seq[domain.User]

	// FindUser looks a user up by id; a miss is reported, not returned as an error
	FindUser(ctx context.Context, id int) (domain.User, bool)

	// DeleteUser runs the admin-gated, logged delete on behalf of admin
	DeleteUser(ctx context.Context, admin *domain.AdminUser) error
}

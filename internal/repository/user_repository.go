package repository

import (
	"context"
	"iter"

	"github.com/AKumarKaushik/usersystem/internal/domain"
)

type UserRepository interface {
	Add(ctx context.Context, user domain.User) error
	// Stream yields the current users in insertion order. Each range over
	// the returned sequence starts a fresh traversal.
	Stream(ctx context.Context) iter.Seq[domain.User]
	Len() int
}

package memory

import (
	"context"
	"iter"
	"slices"
	"sync"

	"github.com/AKumarKaushik/usersystem/internal/domain"
)

type userRepository struct {
	mu    sync.RWMutex
	users []domain.User
}

// NewUserRepository keeps references to users in the given order. It does not
// own or copy them.
func NewUserRepository(users ...domain.User) *userRepository {
	return &userRepository{users: slices.Clone(users)}
}

func (r *userRepository) Add(ctx context.Context, user domain.User) error {
	if user == nil {
		return domain.ErrInvalidUser
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, user)

	return nil
}

func (r *userRepository) Stream(ctx context.Context) iter.Seq[domain.User] {
	return func(yield func(domain.User) bool) {
		for _, user := range r.snapshot() {
			if ctx.Err() != nil {
				return
			}
			if !yield(user) {
				return
			}
		}
	}
}

func (r *userRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

func (r *userRepository) snapshot() []domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.users)
}

package service

import (
	"context"
	"iter"

	"github.com/AKumarKaushik/usersystem/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Add(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Stream(ctx context.Context) iter.Seq[domain.User] {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return func(func(domain.User) bool) {}
	}
	return args.Get(0).(iter.Seq[domain.User])
}

func (m *MockUserRepository) Len() int {
	args := m.Called()
	return args.Int(0)
}

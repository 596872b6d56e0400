package service

import (
	"bytes"
	"slices"
	"testing"

	"github.com/AKumarKaushik/usersystem/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindUser(t *testing.T) {
	admin := domain.NewAdminUser(1, "Akash", "akash@test.com")
	regular := domain.NewRegularUser(2, "Rahul", "rahul@test.com")

	t.Run("found", func(t *testing.T) {
		var out bytes.Buffer

		user, ok := FindUser(&out, slices.Values([]domain.User{admin, regular}), 2)

		require.True(t, ok)
		assert.Same(t, regular, user)
		assert.Empty(t, out.String())
	})

	t.Run("not found writes one notice", func(t *testing.T) {
		var out bytes.Buffer

		user, ok := FindUser(&out, slices.Values([]domain.User{admin, regular}), 99)

		assert.False(t, ok)
		assert.Nil(t, user)
		assert.Equal(t, "User not found\n", out.String())
	})

	t.Run("stops scanning at the first match", func(t *testing.T) {
		var out bytes.Buffer
		users := func(yield func(domain.User) bool) {
			if !yield(admin) {
				return
			}
			t.Fatal("scanned past the matching user")
		}

		user, ok := FindUser(&out, users, admin.ID())

		require.True(t, ok)
		assert.Same(t, admin, user)
	})

	t.Run("first of duplicate ids wins", func(t *testing.T) {
		var out bytes.Buffer
		dup := domain.NewRegularUser(1, "Dup", "dup@test.com")

		user, ok := FindUser(&out, slices.Values([]domain.User{admin, dup}), 1)

		require.True(t, ok)
		assert.Same(t, admin, user)
	})

	t.Run("empty collection", func(t *testing.T) {
		var out bytes.Buffer

		user, ok := FindUser(&out, slices.Values([]domain.User(nil)), 1)

		assert.False(t, ok)
		assert.Nil(t, user)
		assert.Equal(t, "User not found\n", out.String())
	})
}

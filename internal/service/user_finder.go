package service

import (
	"fmt"
	"io"
	"iter"

	"github.com/AKumarKaushik/usersystem/internal/domain"
)

// FindUser returns the first user with the given id and stops pulling from
// users as soon as it is found. On a miss it writes "User not found" to w.
func FindUser(w io.Writer, users iter.Seq[domain.User], id int) (domain.User, bool) {
	for user := range users {
		if user.ID() == id {
			return user, true
		}
	}

	fmt.Fprintln(w, "User not found")
	return nil, false
}

package domain

import (
	"cmp"
	"fmt"
	"io"
	"sync/atomic"
	"unicode/utf8"
)

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleRegular Role = "REGULAR"
)

// activeUsers counts users that were constructed and not yet deactivated.
var activeUsers atomic.Int64

// ActiveUserCount returns the number of currently active users across all kinds.
func ActiveUserCount() int {
	return int(activeUsers.Load())
}

// User is implemented by AdminUser and RegularUser only.
type User interface {
	ID() int
	Name() string
	Email() string
	IsActive() bool
	Role() Role

	// Deactivate marks the user inactive. Only the first call changes the active count.
	Deactivate()

	Equals(other User) bool
	CompareTo(other User) int
	NameLength() int
	Invoke() string

	// String returns "<Role> User: <name>".
	String() string
	// GoString returns "<Kind>(<id>, <name>, <email>)".
	GoString() string
}

type baseUser struct {
	id     int
	name   string
	email  string
	active atomic.Bool
}

func (u *baseUser) init(id int, name, email string) {
	u.id, u.name, u.email = id, name, email
	u.active.Store(true)
	activeUsers.Add(1)
}

func (u *baseUser) ID() int        { return u.id }
func (u *baseUser) Name() string   { return u.name }
func (u *baseUser) Email() string  { return u.email }
func (u *baseUser) IsActive() bool { return u.active.Load() }

func (u *baseUser) Deactivate() {
	if u.active.CompareAndSwap(true, false) {
		activeUsers.Add(-1)
	}
}

func (u *baseUser) Equals(other User) bool {
	if other == nil {
		return false
	}
	return u.id == other.ID()
}

func (u *baseUser) CompareTo(other User) int {
	return cmp.Compare(u.id, other.ID())
}

func (u *baseUser) NameLength() int {
	return utf8.RuneCountInString(u.name)
}

func (u *baseUser) Invoke() string {
	return "Callable User " + u.name
}

func (u *baseUser) display(role Role) string {
	return fmt.Sprintf("%s User: %s", role, u.name)
}

func (u *baseUser) debug(kind string) string {
	return fmt.Sprintf("%s(%d, %s, %s)", kind, u.id, u.name, u.email)
}

// CompareUsers orders users by id ascending, for use with slices.SortFunc.
func CompareUsers(a, b User) int {
	return a.CompareTo(b)
}

type AdminUser struct {
	baseUser
}

func NewAdminUser(id int, name, email string) *AdminUser {
	a := &AdminUser{}
	a.init(id, name, email)
	return a
}

// ParseAdminUser builds an AdminUser from "<id>,<name>,<email>".
func ParseAdminUser(text string) (*AdminUser, error) {
	return ParseUser(text, NewAdminUser)
}

func (a *AdminUser) Role() Role       { return RoleAdmin }
func (a *AdminUser) String() string   { return a.display(RoleAdmin) }
func (a *AdminUser) GoString() string { return a.debug("AdminUser") }

// DeleteUser performs the deletion itself. Callers are expected to gate it
// on the admin role.
func (a *AdminUser) DeleteUser(w io.Writer) error {
	_, err := fmt.Fprintln(w, "User deleted")
	return err
}

type RegularUser struct {
	baseUser
}

func NewRegularUser(id int, name, email string) *RegularUser {
	r := &RegularUser{}
	r.init(id, name, email)
	return r
}

// ParseRegularUser builds a RegularUser from "<id>,<name>,<email>".
func ParseRegularUser(text string) (*RegularUser, error) {
	return ParseUser(text, NewRegularUser)
}

func (r *RegularUser) Role() Role       { return RoleRegular }
func (r *RegularUser) String() string   { return r.display(RoleRegular) }
func (r *RegularUser) GoString() string { return r.debug("RegularUser") }

// ParseUser decodes text with SplitUserFields and hands the fields to newUser.
// Nothing is constructed when the text is malformed.
func ParseUser[U User](text string, newUser func(id int, name, email string) U) (U, error) {
	fields, err := SplitUserFields(text)
	if err != nil {
		var zero U
		return zero, err
	}
	return newUser(fields.ID, fields.Name, fields.Email), nil
}

package domain

import (
	"strconv"
	"strings"
)

const userFieldCount = 3

// UserFields is the decoded form of an "<id>,<name>,<email>" record.
type UserFields struct {
	ID    int
	Name  string
	Email string
}

// IsValidEmail is a weak format check: the text must contain both "@" and ".".
func IsValidEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

// SplitUserFields splits text on commas into exactly three fields. Fields are
// taken as-is, without trimming or unquoting.
func SplitUserFields(text string) (UserFields, error) {
	parts := strings.Split(text, ",")
	if len(parts) != userFieldCount {
		return UserFields{}, NewParseError("expected %d comma-separated fields, got %d in %q", userFieldCount, len(parts), text)
	}

	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return UserFields{}, NewParseError("user id %q is not an integer", parts[0])
	}

	return UserFields{
		ID:    id,
		Name:  parts[1],
		Email: parts[2],
	}, nil
}

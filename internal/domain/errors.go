package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches by code so errors carrying extra detail still satisfy errors.Is.
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrParse - malformed "<id>,<name>,<email>" text
	ErrParse = &DomainError{
		Code:    "PARSE_ERROR",
		Message: "malformed user record",
	}

	// ErrPermission - admin-only operation called by a non-admin
	ErrPermission = &DomainError{
		Code:    "PERMISSION_DENIED",
		Message: "Admin access required",
	}

	// ErrInvalidUser - nil user handed to a repository
	ErrInvalidUser = &DomainError{
		Code:    "INVALID_USER",
		Message: "user must not be nil",
	}
)

// NewParseError creates a PARSE_ERROR with details about the bad input
func NewParseError(format string, args ...any) *DomainError {
	return &DomainError{
		Code:    ErrParse.Code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Package decorator wraps operations with cross-cutting behaviour: execution
// notices, timing and the admin role gate. Each wrapper returns an Operation
// with the same result and error as the one it wraps.
package decorator

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/AKumarKaushik/usersystem/internal/domain"
)

// Operation is a unit of work that can be wrapped.
type Operation[T any] func(ctx context.Context) (T, error)

// RoleHolder is anything that reports a role. Every domain.User is one.
type RoleHolder interface {
	Role() domain.Role
}

// LogExecution writes "[LOG] Executing <name>" before each call when enabled.
func LogExecution[T any](w io.Writer, name string, enabled bool, op Operation[T]) Operation[T] {
	return func(ctx context.Context) (T, error) {
		if enabled {
			fmt.Fprintf(w, "[LOG] Executing %s\n", name)
		}
		return op(ctx)
	}
}

// TimeExecution writes the wall-clock duration of a completed call in seconds.
// Nothing is written when op fails.
func TimeExecution[T any](w io.Writer, name string, op Operation[T]) Operation[T] {
	return func(ctx context.Context) (T, error) {
		start := time.Now()
		result, err := op(ctx)
		if err != nil {
			return result, err
		}
		fmt.Fprintf(w, "[TIME] %s took %.4fs\n", name, time.Since(start).Seconds())
		return result, nil
	}
}

// RequireAdmin rejects the call with domain.ErrPermission unless caller holds
// the admin role. The role is read on every call.
func RequireAdmin[T any](caller RoleHolder, op Operation[T]) Operation[T] {
	return func(ctx context.Context) (T, error) {
		if caller.Role() != domain.RoleAdmin {
			var zero T
			return zero, domain.ErrPermission
		}
		return op(ctx)
	}
}

// Action adapts a function returning only an error into an Operation.
func Action(fn func(ctx context.Context) error) Operation[struct{}] {
	return func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	}
}

package ratelimit

import (
	"context"
)

type checker interface {
	Check(userID string, action Action) error
}

// Guard runs fn only when the user is still within the action's limit.
func Guard[T any](ctx context.Context, limiter checker, userID string, action Action, fn func(ctx context.Context) (T, error)) (T, error) {
	if err := limiter.Check(userID, action); err != nil {
		var zero T
		return zero, err
	}
	return fn(ctx)
}

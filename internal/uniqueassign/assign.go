// Package uniqueassign lazily assigns a unique value to a record that may be
// written concurrently by other processes.
//
// The caller's state is re-read immediately before the single write, and the write itself
// is expected to be conditional (e.g. only when the field is still empty). A concurrent
// writer that got there first wins and its value is returned instead of ours.
package uniqueassign

import (
	"context"
	"errors"
	"fmt"
)

var ErrAttemptsExhausted = errors.New("no free unique value found")

type Assigner[T any] struct {
	// Current reads the authoritative value, ok is false while none is assigned.
	Current func(ctx context.Context) (value T, ok bool, err error)
	// Generate makes a new candidate.
	Generate func() (T, error)
	// Taken reports whether a candidate is already assigned to another record.
	Taken func(ctx context.Context, candidate T) (bool, error)
	// Commit writes the candidate unless a value was assigned meanwhile, committed reports which happened.
	Commit func(ctx context.Context, candidate T) (committed bool, err error)

	MaxAttempts int
}

// Assign returns the value assigned to the record, generating and committing one if needed.
func Assign[T any](ctx context.Context, a Assigner[T]) (T, error) {
	var zero T

	if current, ok, err := a.Current(ctx); err != nil {
		return zero, fmt.Errorf("read current: %w", err)
	} else if ok {
		return current, nil
	}

	attempts := a.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		candidate, err := a.Generate()
		if err != nil {
			return zero, fmt.Errorf("generate: %w", err)
		}

		taken, err := a.Taken(ctx, candidate)
		if err != nil {
			return zero, fmt.Errorf("check taken: %w", err)
		}
		if taken {
			continue
		}

		// someone may have assigned a value while we were generating
		if current, ok, err := a.Current(ctx); err != nil {
			return zero, fmt.Errorf("re-read current: %w", err)
		} else if ok {
			return current, nil
		}

		committed, err := a.Commit(ctx, candidate)
		if err != nil {
			return zero, fmt.Errorf("commit: %w", err)
		}
		if committed {
			return candidate, nil
		}

		// lost the race, the winner's value is the one to keep
		current, ok, err := a.Current(ctx)
		if err != nil {
			return zero, fmt.Errorf("read winner: %w", err)
		}
		if ok {
			return current, nil
		}
		// commit refused without anybody assigning a value: the candidate got taken, retry
	}

	return zero, fmt.Errorf("%w after %d attempts", ErrAttemptsExhausted, attempts)
}

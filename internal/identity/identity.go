// Package identity carries the caller's user id, resolved by the external
// identity provider and forwarded by the gateway, through request contexts.
package identity

import (
	"context"

	"github.com/rebld/rebldserver/internal/apperr"
)

// HeaderUserID is set by the gateway after it verified the provider's token.
const HeaderUserID = "X-Rebld-User"

type ctxKey struct{}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

func UserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(ctxKey{}).(string)
	return userID, ok && userID != ""
}

// RequireUserID returns apperr.ErrUnauthorized when no caller is attached to ctx.
func RequireUserID(ctx context.Context) (string, error) {
	userID, ok := UserID(ctx)
	if !ok {
		return "", apperr.ErrUnauthorized
	}
	return userID, nil
}

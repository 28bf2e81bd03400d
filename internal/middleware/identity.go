package middleware

import (
	"net/http"
	"strings"

	"github.com/rebld/rebldserver/internal/identity"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// UserIdentity moves the gateway provided user id header into the request context.
// Requests without the header pass through anonymous; handlers decide whether they need a caller.
func UserIdentity() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := strings.TrimSpace(r.Header.Get(identity.HeaderUserID))
			if userID == "" {
				next.ServeHTTP(w, r)
				return
			}

			trace.SpanFromContext(r.Context()).SetAttributes(attribute.String("user.id", userID))
			next.ServeHTTP(w, r.WithContext(identity.WithUserID(r.Context(), userID)))
		})
	}
}

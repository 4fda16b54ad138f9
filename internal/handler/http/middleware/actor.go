// Package middleware carries request-scoped values the handlers need.
package middleware

import (
	"context"
	"net/http"
)

type actorKey struct{}

// DefaultActor is recorded as the approver when the client does not
// identify itself. There is no authentication; the header is advisory.
const DefaultActor = "Current User"

// ActorHeader names the request header carrying the acting user's display
// name.
const ActorHeader = "X-Actor"

// Actor resolves the acting user from the request and stores it on the
// context.
func Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := r.Header.Get(ActorHeader)
		if actor == "" {
			actor = DefaultActor
		}
		ctx := context.WithValue(r.Context(), actorKey{}, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ActorFromContext returns the acting user's display name.
func ActorFromContext(ctx context.Context) string {
	if actor, ok := ctx.Value(actorKey{}).(string); ok && actor != "" {
		return actor
	}
	return DefaultActor
}

package rest

import (
	"context"

	"github.com/duongpm13/cat-battle/internal/session"
)

// claimsContextKey is the context key for the verified session claims.
type claimsContextKey struct{}

// withClaims stores verified session claims in context.
func withClaims(ctx context.Context, claims session.Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey{}, claims)
}

// claimsFromContext returns the session claims stored in context.
func claimsFromContext(ctx context.Context) (session.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey{}).(session.Claims)
	return claims, ok
}

package utils

import (
	"context"
)

// Identity is the authenticated caller as asserted by the session token.
// It is the only shape the identity claim ever takes; nothing downstream
// handles a bare email string.
type Identity struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type contextKey string

const identityKey contextKey = "identity"

// SetIdentityContext stores the verified identity claim on the context.
func SetIdentityContext(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentityFromContext returns the identity claim set by the auth
// middleware, if any.
func GetIdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}

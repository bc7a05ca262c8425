package auth

import (
	"context"

	"github.com/hongminglow/library-be/internal/models"
)

// Caller is the identity derived from a verified bearer token.
type Caller struct {
	ID          int64
	Email       string
	Permissions models.Permissions
}

// Can reports whether the caller holds perm.
func (c Caller) Can(perm models.Permission) bool {
	return c.Permissions.Has(perm)
}

type callerKey struct{}

// WithCaller stores the authenticated caller in ctx.
func WithCaller(ctx context.Context, c Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, c)
}

// CallerFrom returns the caller stored by WithCaller, if any.
func CallerFrom(ctx context.Context) (Caller, bool) {
	c, ok := ctx.Value(callerKey{}).(Caller)
	return c, ok
}

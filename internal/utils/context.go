// Package utils provides small helpers shared by the HTTP, service and
// store layers: typed context keys, JWT issuing and parsing, JSON response
// writing and id generation.
package utils

import (
	"context"

	"github.com/myantech/erp-api/models"
)

// contextKey is a private type for context keys so that values stored by
// this package never collide with string keys used elsewhere.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key under which the privilege gate stores the
// authenticated caller of an allowed request.
var PrincipalCtxKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, p)
}

// GetPrincipalFromContext returns the principal stored by [WithPrincipal].
// ok is false when the request never passed the privilege gate.
func GetPrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	return p, ok
}

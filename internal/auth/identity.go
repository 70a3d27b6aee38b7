// Package auth resolves the caller's identity from a request and issues the
// bearer tokens it accepts.
package auth

import (
	"context"
	"net/http"
)

// Identity is the outcome of resolving a request. The zero value is anonymous.
type Identity struct {
	Authenticated bool
	UserID        string
	Name          string
	Email         string
}

// Anonymous is the result for requests without valid credentials.
var Anonymous = Identity{}

// Resolver turns an inbound request into an Identity. Implementations must
// not touch persisted state.
type Resolver interface {
	Resolve(r *http.Request) Identity
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(r *http.Request) Identity

// Resolve calls f(r).
func (f ResolverFunc) Resolve(r *http.Request) Identity { return f(r) }

type contextKey string

const contextKeyIdentity contextKey = "identity"

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKeyIdentity, id)
}

// FromContext returns the identity stored in ctx, or Anonymous.
func FromContext(ctx context.Context) Identity {
	id, ok := ctx.Value(contextKeyIdentity).(Identity)
	if !ok {
		return Anonymous
	}
	return id
}

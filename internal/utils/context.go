// Package utils provides general-purpose helper utilities
// used across different parts of the client.
// Includes tools for working with context, type-safe keys, HTTP client
// initialization, mutation id generation and API token inspection.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// MutationIDCtxKey is the key used to store the id of the synchronizer
// mutation a remote call belongs to. The transport sends it as X-Request-ID.
var MutationIDCtxKey = contextKey("mutationID")

// WithMutationID returns a copy of ctx carrying id under [MutationIDCtxKey].
func WithMutationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, MutationIDCtxKey, id)
}

// GetMutationIDFromContext retrieves the mutation id from the context.
//
// Returns ok == false when the value is missing, empty or not a string.
func GetMutationIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(MutationIDCtxKey).(string)
	return id, ok && id != ""
}

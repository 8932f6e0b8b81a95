// Package utils holds small helpers shared by the transport and service
// layers: context keys, JSON response writing, the resty client wrapper,
// JWT issuing and parsing, and trace ID generation.
package utils

import (
	"context"
)

// contextKey keeps context keys of this package from colliding with string
// keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the authenticated user ID (int64) in a request context.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext returns the user ID set by [WithUserID]. ok is false
// when the value is missing or is not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for carrying the request identity in a context, password
// hashing, session token signing, API token minting, HTTP response writing
// and HTTP client initialization.
package utils

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
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

// CurrentUserCtxKey is the key under which the authenticated user of a
// request is stored in its context.
var CurrentUserCtxKey = contextKey("currentUser")

// WithCurrentUser returns a copy of ctx carrying user as the request identity.
func WithCurrentUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, CurrentUserCtxKey, user)
}

// CurrentUserFromContext returns the request identity stored by
// [WithCurrentUser]. ok is false when the request is anonymous.
func CurrentUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(CurrentUserCtxKey).(models.User)
	return user, ok
}

// GetUserIDFromContext returns the id of the request identity.
//
// Example usage:
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // handle anonymous request
//	}
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	user, ok := CurrentUserFromContext(ctx)
	if !ok {
		return 0, false
	}
	return user.UserID, true
}

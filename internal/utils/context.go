// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HMAC signing,
// HTTP response writing, JWT token generation and validation, and other
// common operations.
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

// AdminIDCtxKey is the key used to store the authenticated operator's
// identifier in the context. Used together with GetAdminIDFromContext for
// type-safe retrieval of the admin ID from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.AdminIDCtxKey, int64(1))
var AdminIDCtxKey = contextKey("adminID")

// GetAdminIDFromContext retrieves the operator identifier from the context.
//
// Returns the admin ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetAdminIDFromContext(ctx context.Context) (int64, bool) {
	adminID, ok := ctx.Value(AdminIDCtxKey).(int64)
	return adminID, ok
}

// Package utils provides general-purpose helper utilities
// used across different parts of the gateway.
// Includes tools for working with context, type-safe keys, trace ids,
// HTTP response writing, HTTP client initialization, and unverified JWT
// inspection for access logs.
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

// JSONBodyCtxKey is the key under which the JSON body parser stores the
// decoded request body.
var JSONBodyCtxKey = contextKey("jsonBody")

// WithJSONBody returns a copy of ctx carrying the decoded request body.
func WithJSONBody(ctx context.Context, body any) context.Context {
	return context.WithValue(ctx, JSONBodyCtxKey, body)
}

// GetJSONBodyFromContext retrieves the decoded request body stored by the
// JSON body parser.
//
// It is for route groups served in-process. Proxied groups never call it:
// the parser rewinds r.Body and the reverse proxy forwards the raw bytes.
//
// Returns the value and an ok flag:
//   - ok == true: a body was parsed for this request
//   - ok == false: the request had no JSON body
//
// Example usage:
//
//	body, ok := utils.GetJSONBodyFromContext(r.Context())
//	if !ok {
//	    // nothing was sent
//	}
func GetJSONBodyFromContext(ctx context.Context) (any, bool) {
	v := ctx.Value(JSONBodyCtxKey)
	return v, v != nil
}

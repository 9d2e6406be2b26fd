// Package middleware provides chainable HTTP middleware.
//
// The global chain applied in main is RequestID, Logger, Recovery and
// CORS. Auth is applied per-route to the protected endpoints; it
// validates the raw Authorization header and injects the authenticated
// user id into the request context, where handlers read it back with
// GetUserID. Handlers never re-validate the token.
package middleware

// Package handler implements the HTTP endpoints.
//
// Each handler struct wraps one service, decodes and validates the JSON
// body, delegates to the service, and maps sentinel errors to API error
// responses with errors.Is switches. Success bodies are the bare
// resources; error bodies are {"message": "..."} with the HTTP status as
// the only machine-readable signal.
//
// Protected endpoints rely on the auth middleware having already
// resolved the acting user; handlers never touch the Authorization
// header themselves.
package handler

// Package services holds the application services behind the CLI pages.
//
// Each service checks the session before talking to the backend, applies
// the role gates from package access, and validates input with
// go-playground/validator so incomplete forms never leave the client.
// Errors are the client package taxonomy, wrapped with %w; client.UserMessage
// turns them into text for the user. On failure nothing the caller already
// holds is modified: list-returning mutations hand back a fresh list only on
// success.
package services

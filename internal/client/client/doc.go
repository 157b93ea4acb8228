// Package client contains the client-side building blocks that talk to the
// Student Diary backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     auth, subjects, grades, tasks, the academic calendar, assignments and
//     the forums.
//  2. A JSON/HTTP implementation (see HTTPClient) that injects the bearer
//     token from a TokenStore, tags each request with an X-Request-ID and
//     maps response statuses to the error taxonomy below. A 401 on any
//     authenticated call invalidates the TokenStore.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations): an SQLite
//     database migrated with embedded goose migrations.
//
// # Error Handling
//
// Failures are reported as sentinels matched with errors.Is:
// ErrAuthenticationRequired, ErrAuthorizationDenied (as *AuthorizationError
// carrying the backend message), ErrUnavailable, ErrRequestFailed,
// ErrValidation (as *ValidationError) and ErrForbiddenRole. UserMessage
// converts any of them into the text shown to the user.
package client

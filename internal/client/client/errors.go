package client

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAuthenticationRequired means there is no usable session: the user
	// never logged in, logged out, or the backend rejected the token.
	ErrAuthenticationRequired = errors.New("authentication required")
	// ErrAuthorizationDenied is the class of 403 responses (role mismatch).
	ErrAuthorizationDenied = errors.New("authorization denied")
	// ErrUnavailable covers transport failures and 5xx responses.
	ErrUnavailable = errors.New("server unavailable")
	// ErrRequestFailed covers any other unexpected response status.
	ErrRequestFailed = errors.New("request failed")
	// ErrValidation is the class of missing or malformed input.
	ErrValidation = errors.New("validation failed")
	// ErrForbiddenRole is returned when a role-gated operation is attempted
	// by a role that may not perform it. No request is sent.
	ErrForbiddenRole = errors.New("operation not permitted for this role")
)

// GenericFailureMessage is what the user sees for network and server errors.
const GenericFailureMessage = "An error occurred. Please try again."

// LoginRequiredMessage is what the user sees when a session is needed.
const LoginRequiredMessage = "Please log in to continue."

// AuthorizationError carries the backend's 403 message, which is shown to
// the user unchanged.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrAuthorizationDenied, e.Message)
}

func (e *AuthorizationError) Unwrap() error { return ErrAuthorizationDenied }

// ValidationError lists the fields that failed validation, or carries the
// backend's message when the server rejected the input.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: missing or invalid %s", ErrValidation, strings.Join(e.Fields, ", "))
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", ErrValidation, e.Message)
	}
	return ErrValidation.Error()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// StatusError is an unexpected HTTP status.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: status %d: %s", ErrRequestFailed, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: status %d", ErrRequestFailed, e.Code)
}

func (e *StatusError) Unwrap() error { return ErrRequestFailed }

// UserMessage turns any error from this package into the text shown to the
// user. 403 messages pass through verbatim.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var authz *AuthorizationError
	if errors.As(err, &authz) {
		return authz.Message
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		if len(verr.Fields) > 0 {
			return "Please fill in all required fields: " + strings.Join(verr.Fields, ", ")
		}
		if verr.Message != "" {
			return verr.Message
		}
		return "Please fill in all required fields"
	}

	switch {
	case errors.Is(err, ErrAuthenticationRequired):
		return LoginRequiredMessage
	case errors.Is(err, ErrForbiddenRole):
		return "This action is not available for your role."
	default:
		return GenericFailureMessage
	}
}

package client

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"authorization verbatim", &AuthorizationError{Message: "Access denied: not a teacher"}, "Access denied: not a teacher"},
		{"wrapped authorization", fmt.Errorf("login: %w", &AuthorizationError{Message: "Wrong role"}), "Wrong role"},
		{"validation fields", &ValidationError{Fields: []string{"email", "password"}}, "Please fill in all required fields: email, password"},
		{"validation message", &ValidationError{Message: "Bad date"}, "Bad date"},
		{"validation bare", &ValidationError{}, "Please fill in all required fields"},
		{"auth required", fmt.Errorf("tasks: %w", ErrAuthenticationRequired), LoginRequiredMessage},
		{"forbidden role", ErrForbiddenRole, "This action is not available for your role."},
		{"unavailable", ErrUnavailable, GenericFailureMessage},
		{"status", &StatusError{Code: 404}, GenericFailureMessage},
		{"anything else", errors.New("boom"), GenericFailureMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

func TestErrorClasses(t *testing.T) {
	assert.ErrorIs(t, &AuthorizationError{Message: "x"}, ErrAuthorizationDenied)
	assert.ErrorIs(t, &ValidationError{}, ErrValidation)
	assert.ErrorIs(t, &StatusError{Code: 418}, ErrRequestFailed)

	assert.EqualError(t, &StatusError{Code: 418, Message: "teapot"}, "request failed: status 418: teapot")
	assert.EqualError(t, &ValidationError{Fields: []string{"text"}}, "validation failed: missing or invalid text")
}

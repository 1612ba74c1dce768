package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        *APIError
		wantStatus int
		wantCode   string
	}{
		{"validation", NewErrValidation(), http.StatusBadRequest, CodeValidation},
		{"malformed", NewErrMalformedRequest(), http.StatusBadRequest, CodeMalformedRequest},
		{"email taken", NewErrEmailIsTaken(), http.StatusConflict, CodeEmailTaken},
		{"credentials", NewErrInvalidCredentials(), http.StatusUnauthorized, CodeInvalidCreds},
		{"missing token", NewErrMissingAuthorizationToken(), http.StatusUnauthorized, CodeMissingToken},
		{"invalid token", NewErrInvalidAuthorizationToken(), http.StatusForbidden, CodeInvalidToken},
		{"user gone", NewErrUserNoLongerExists(), http.StatusUnauthorized, CodeUserGone},
		{"user not found", NewErrUserNotFound(), http.StatusNotFound, CodeUserNotFound},
		{"route not found", NewErrRouteNotFound(), http.StatusNotFound, CodeRouteNotFound},
		{"method not allowed", NewErrMethodNotAllowed(), http.StatusMethodNotAllowed, CodeMethodNotAllowed},
		{"internal", NewErrInternalServerError(), http.StatusInternalServerError, CodeInternal},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantStatus, tt.err.Status)
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Invalid email or password", NewErrInvalidCredentials().Error())

	err := NewErrValidation(
		FieldError{Field: "email", Message: "must be a valid email"},
		FieldError{Field: "password", Message: "is required"},
	)
	assert.Equal(t, "Invalid input data: email: must be a valid email, password: is required", err.Error())
}

func TestAPIError_As(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("signup: %w", NewErrEmailIsTaken())

	var apiErr *APIError
	require.True(t, errors.As(wrapped, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)
}

// Package apierrors defines the errors that reach API clients.
package apierrors

import (
	"net/http"
	"strings"
)

// Error codes sent to clients next to the message.
const (
	CodeValidation       = "validation_failed"
	CodeEmailTaken       = "email_taken"
	CodeInvalidCreds     = "invalid_credentials"
	CodeMissingToken     = "missing_token"
	CodeInvalidToken     = "invalid_token"
	CodeUserGone         = "user_no_longer_exists"
	CodeUserNotFound     = "user_not_found"
	CodeRouteNotFound    = "route_not_found"
	CodeMethodNotAllowed = "method_not_allowed"
	CodeInternal         = "internal_error"
	CodeMalformedRequest = "malformed_request"
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is an error with a status and a message safe to show to clients.
type APIError struct {
	Status  int
	Code    string
	Message string
	Fields  []FieldError
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return e.Message + ": " + strings.Join(parts, ", ")
}

func NewErrValidation(fields ...FieldError) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Code:    CodeValidation,
		Message: "Invalid input data",
		Fields:  fields,
	}
}

func NewErrMalformedRequest() *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Code:    CodeMalformedRequest,
		Message: "Invalid input data",
	}
}

func NewErrEmailIsTaken() *APIError {
	return &APIError{
		Status:  http.StatusConflict,
		Code:    CodeEmailTaken,
		Message: "User already exists with this email",
	}
}

// NewErrInvalidCredentials is shared by unknown email and wrong password.
func NewErrInvalidCredentials() *APIError {
	return &APIError{
		Status:  http.StatusUnauthorized,
		Code:    CodeInvalidCreds,
		Message: "Invalid email or password",
	}
}

func NewErrMissingAuthorizationToken() *APIError {
	return &APIError{
		Status:  http.StatusUnauthorized,
		Code:    CodeMissingToken,
		Message: "Access token required",
	}
}

func NewErrInvalidAuthorizationToken() *APIError {
	return &APIError{
		Status:  http.StatusForbidden,
		Code:    CodeInvalidToken,
		Message: "Invalid or expired token",
	}
}

func NewErrUserNoLongerExists() *APIError {
	return &APIError{
		Status:  http.StatusUnauthorized,
		Code:    CodeUserGone,
		Message: "Invalid token",
	}
}

func NewErrUserNotFound() *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Code:    CodeUserNotFound,
		Message: "User not found",
	}
}

func NewErrRouteNotFound() *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Code:    CodeRouteNotFound,
		Message: "API route not found",
	}
}

func NewErrMethodNotAllowed() *APIError {
	return &APIError{
		Status:  http.StatusMethodNotAllowed,
		Code:    CodeMethodNotAllowed,
		Message: "Method not allowed",
	}
}

func NewErrInternalServerError() *APIError {
	return &APIError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternal,
		Message: "Internal server error",
	}
}

// Package errors provides standardized error types for the API.
package errors

import (
	"fmt"
	"net/http"
)

// Code represents an API error code.
type Code string

const (
	CodeNotFound       Code = "NOT_FOUND"
	CodeInvalidOption  Code = "INVALID_OPTION"
	CodeInvalidRequest Code = "INVALID_REQUEST"
	CodeInternal       Code = "INTERNAL_ERROR"
	CodeRateLimited    Code = "RATE_LIMITED"
)

// APIError represents a structured API error.
type APIError struct {
	Code       Code   `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
}

func (e *APIError) Error() string {
	return e.Message
}

// ErrRateLimited is returned when a client sends requests faster than
// the configured rate.
var ErrRateLimited = &APIError{Code: CodeRateLimited, Message: "Rate limit exceeded", HTTPStatus: http.StatusTooManyRequests}

// NotFound creates a not found error with a custom message.
func NotFound(resource string) *APIError {
	return &APIError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

// InvalidOption wraps an option parse error, keeping its message.
func InvalidOption(err error) *APIError {
	return &APIError{
		Code:       CodeInvalidOption,
		Message:    err.Error(),
		HTTPStatus: http.StatusBadRequest,
	}
}

// InvalidRequest creates a bad request error with a custom message.
func InvalidRequest(message string) *APIError {
	return &APIError{
		Code:       CodeInvalidRequest,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// Internal creates an internal error with a client-safe message.
func Internal(message string) *APIError {
	if message == "" {
		message = "Internal server error"
	}
	return &APIError{
		Code:       CodeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

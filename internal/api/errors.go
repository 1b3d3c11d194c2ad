package api

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrNotFound indicates the requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidRequest indicates the request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrServerError indicates a server-side error
	ErrServerError = errors.New("server error")

	// ErrTimeout indicates the request timed out
	ErrTimeout = errors.New("request timed out")

	// ErrRateLimited indicates the API throttled the request
	ErrRateLimited = errors.New("rate limited")
)

// APIError represents an error returned by the kufar.by API
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d (%s): %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("API error %d: %s (endpoint: %s)", e.StatusCode, e.Status, e.Endpoint)
}

// Is implements errors.Is for APIError
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == 404
	case ErrServerError:
		return e.StatusCode >= 500
	case ErrInvalidRequest:
		return e.StatusCode == 400
	case ErrRateLimited:
		return e.StatusCode == 429
	}
	return false
}

// NewAPIError creates a new API error
func NewAPIError(statusCode int, status, endpoint string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Status:     status,
		Endpoint:   endpoint,
	}
}

// ValidationError represents a validation error for request parameters
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

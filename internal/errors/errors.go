package errors

import (
	"errors"
	"net/http"
)

// APIError represents a structured error for API responses.
// Includes a code, message, and HTTP status for consistent error handling.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

// Error implements the error interface for APIError.
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError with the given code, message, and status.
func NewAPIError(code, message string, status int) *APIError {
	return &APIError{Code: code, Message: message, Status: status}
}

// Predefined API errors for common scenarios.
var (
	ErrInvalidBody       = NewAPIError("invalid_body_format", "unable to parse the request body", http.StatusUnprocessableEntity)
	ErrInvalidToken      = NewAPIError("invalid_token", "Invalid token", http.StatusUnauthorized)
	ErrExpiredToken      = NewAPIError("expired_token", "Expired token", http.StatusUnauthorized)
	ErrMissingSubject    = NewAPIError("missing_subject", "token claims carry no subject identifier", http.StatusUnauthorized)
	ErrNotFound          = NewAPIError("not_found", "Resource not found", http.StatusNotFound)
	ErrChecklistNotFound = NewAPIError("checklist_not_exist", "the checklist you are trying to operate does not exist", http.StatusNotFound)
	ErrIncidentNotFound  = NewAPIError("incident_not_exist", "the incident you are trying to operate does not exist", http.StatusNotFound)
	ErrInvalidSeverity   = NewAPIError("invalid_severity", "severity must be one of: low, medium, high", http.StatusBadRequest)
	ErrInvalidStatus     = NewAPIError("invalid_status", "status must be one of: open, ack, resolved", http.StatusBadRequest)
	ErrEmptyMessageBody  = NewAPIError("empty_message_body", "message body must not be empty", http.StatusBadRequest)
	ErrInvalidCursor     = NewAPIError("invalid_cursor", "the pagination cursor is malformed", http.StatusBadRequest)
	ErrRateLimitExceeded = NewAPIError("rate_limit_exceeded", "too many requests from this client", http.StatusTooManyRequests)
	ErrInternalServer    = NewAPIError("internal_error", "Internal server error", http.StatusInternalServerError)
)

// From returns the APIError wrapped in err, or ErrInternalServer when err is
// not an APIError. Handlers use it to map service errors onto responses.
func From(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return ErrInternalServer
}

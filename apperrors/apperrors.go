// Package apperrors carries the stable machine-readable error codes surfaced
// to API clients. Every client-visible failure maps to one APIError; internal
// detail is logged, never returned.
package apperrors

import "net/http"

type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"error"`
}

func (e *APIError) Error() string {
	return e.Code + ": " + e.Message
}

func BadRequest(code, message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: code, Message: message}
}

func NotFound(code, message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Code: code, Message: message}
}

func Unauthorized(message string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Code: "UNAUTHORIZED", Message: message}
}

func Internal() *APIError {
	return &APIError{Status: http.StatusInternalServerError, Code: "INTERNAL_ERROR", Message: "Internal server error"}
}

// Shared across entity handlers: the ?id= parameter was missing or not an integer.
func InvalidID() *APIError {
	return BadRequest("INVALID_ID", "Valid ID is required")
}

package services

import "net/http"

// Error is a domain failure that maps to a specific HTTP status. Anything
// else bubbling out of a service is treated as an internal error (500).
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Validation flags missing or malformed input.
func Validation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// Unauthorized flags a missing, invalid, or expired credential. Failed
// logins use it too, deliberately sharing one generic message.
func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// NotFound flags a missing entity.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Conflict flags a duplicate (currently only a re-registered email). The
// API reports it as a 400, matching the storefront's published contract.
func Conflict(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

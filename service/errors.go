package service

import "fmt"

// ValidationError marks malformed or missing input. Maps to HTTP 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Invalid builds a ValidationError with a formatted message.
func Invalid(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ConflictError marks a uniqueness violation (email, username, barcode,
// orderId). Maps to HTTP 400; order-id collisions are retryable.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// Conflict builds a ConflictError with a formatted message.
func Conflict(format string, args ...any) error {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError marks a missing entity. Maps to HTTP 404.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// NotFound builds a NotFoundError with a formatted message.
func NotFound(format string, args ...any) error {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}

// AuthError marks bad credentials. Maps to HTTP 400.
type AuthError struct {
	Msg string
}

func (e *AuthError) Error() string { return e.Msg }

// Auth builds an AuthError with a formatted message.
func Auth(format string, args ...any) error {
	return &AuthError{Msg: fmt.Sprintf(format, args...)}
}

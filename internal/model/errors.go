package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	ErrChallengeNotFound = errors.New("otp challenge not found")
	ErrChallengeExpired  = errors.New("otp challenge expired")
	ErrChallengeConsumed = errors.New("otp challenge already used")
	ErrUnauthenticated   = errors.New("not authenticated")
)

// ValidationError describes a rejected form input. It never reaches the state store.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// InvalidOTPError is returned when a submitted code does not match the challenge.
// Hint carries the expected code, mirroring the mock login flow.
type InvalidOTPError struct {
	Hint string
}

func (e *InvalidOTPError) Error() string {
	return fmt.Sprintf("Invalid OTP. Please try again. Use %q", e.Hint)
}

package services

import (
	"errors"
	"fmt"

	"devdash-backend/pkg/validator"
)

// ErrNotFound covers both missing entities and entities owned by someone else.
var ErrNotFound = errors.New("not found")

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = &ValidationError{Field: "email", Message: "email is already registered"}
)

// ValidationError is a client error tied to one request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// validate runs struct-tag validation and maps failures to ValidationError.
func validate(req interface{}) error {
	err := validator.Validate(req)
	if err == nil {
		return nil
	}
	var fe *validator.FieldError
	if errors.As(err, &fe) {
		return &ValidationError{Field: fe.Field, Message: fe.Message}
	}
	return &ValidationError{Message: err.Error()}
}

package errors

import (
	"fmt"
)

// Error types exposed on the wire.
const (
	TypeValidation = "Validation Error"
	TypeInternal   = "Internal Error"
)

// AppError is the error shape every route returns:
// {status_code, type, message}.
type AppError struct {
	StatusCode int    `json:"status_code"`
	Type       string `json:"type"`
	Message    string `json:"message"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func New(statusCode int, errType, message string) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Type:       errType,
		Message:    message,
	}
}

// Validation builds a 400 error whose message echoes the violation.
func Validation(message string) *AppError {
	return New(400, TypeValidation, message)
}

func Validationf(format string, args ...interface{}) *AppError {
	return Validation(fmt.Sprintf(format, args...))
}

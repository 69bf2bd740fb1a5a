package serverutils

import "github.com/gofiber/fiber/v2"

// AppError is the error type handlers and services return for expected
// failures. The error handler middleware maps it onto the HTTP envelope.
type AppError struct {
	Status  int
	Message string
	Details interface{}
}

func (e *AppError) Error() string {
	return e.Message
}

func NewValidationError(message string, details interface{}) *AppError {
	return &AppError{
		Status:  fiber.StatusBadRequest,
		Message: message,
		Details: details,
	}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{
		Status:  fiber.StatusNotFound,
		Message: message,
	}
}

// ErrorEnvelope is the wire shape for every non-2xx response.
type ErrorEnvelope struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

func ErrorResponse(message string, details interface{}) ErrorEnvelope {
	return ErrorEnvelope{
		Error:   message,
		Details: details,
	}
}

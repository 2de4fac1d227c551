package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorEnvelope is the wire shape for every domain condition. Clients
// recognize an error response by the numeric statusCode field.
type ErrorEnvelope struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// AppError is a domain condition carried as a value through the service
// layer. It maps 1:1 onto the error envelope; the wrapped Err, when present,
// is an unexpected fault and never leaves the process.
type AppError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError reports a missing or soft-deleted record.
func NewNotFoundError(message string) *AppError {
	return &AppError{StatusCode: fiber.StatusNotFound, Message: message}
}

// NewForbiddenError reports a denied ownership check.
func NewForbiddenError(message string) *AppError {
	return &AppError{StatusCode: fiber.StatusForbidden, Message: message}
}

// NewConflictError reports a duplicate-state condition such as repeating the
// current reaction or reusing a taken username.
func NewConflictError(message string) *AppError {
	return &AppError{StatusCode: fiber.StatusConflict, Message: message}
}

// NewValidationError reports malformed or missing input.
func NewValidationError(message string) *AppError {
	return &AppError{StatusCode: fiber.StatusBadRequest, Message: message}
}

// NewUnauthorizedError reports a failed authentication.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{StatusCode: fiber.StatusUnauthorized, Message: message}
}

// NewInternalError wraps an unexpected fault with an operation-specific
// message ("Error fetching posts" etc.). The cause is logged, not serialized.
func NewInternalError(message string, err error) *AppError {
	return &AppError{StatusCode: fiber.StatusInternalServerError, Message: message, Err: err}
}

// RespondWithError writes the error envelope for err. Domain conditions keep
// their own status code and message; anything else becomes a generic 500.
func RespondWithError(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.StatusCode).JSON(ErrorEnvelope{
			Message:    appErr.Message,
			StatusCode: appErr.StatusCode,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorEnvelope{
		Message:    "Internal server error",
		StatusCode: fiber.StatusInternalServerError,
	})
}

package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientStock indicates that a stock deduction asked for more than the
// remaining quantity across all batches of a product.
var ErrInsufficientStock = errors.New("insufficient stock")

// AppError carries an HTTP-ish status code alongside the underlying error so
// repositories can classify failures without the handlers re-inspecting SQL
// state.
type AppError struct {
	Code    int
	Message string
	Err     error
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

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// InsufficientStockError carries the user-facing shortage report verbatim; its
// Error text goes on the wire, so it must not be prefixed with sentinel text.
type InsufficientStockError struct {
	Message string
}

func (e *InsufficientStockError) Error() string {
	return e.Message
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

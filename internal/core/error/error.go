package errx

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "internal server error"
	// RedisErrorMessage describes Redis related failures.
	RedisErrorMessage = "redis operation failed"
	// RedisNotFoundMessage is used when a cache key does not exist.
	RedisNotFoundMessage = "redis key not found"
	// RenderErrorMessage describes JSON-LD serialization failures.
	RenderErrorMessage = "structured data rendering failed"
	// LookupErrorMessage describes failures of catalog or review collaborators.
	LookupErrorMessage = "structured data source lookup failed"
	// VariantErrorMessage is returned for configurable products without variants.
	VariantErrorMessage = "configurable product has no variants"
)

// ErrEmptyVariantSet is returned when a configurable product has no child
// products, so no low/high price can be computed.
var ErrEmptyVariantSet = errors.New("empty variant set")

// AppError wraps an underlying error with an HTTP status and safe message.
type AppError struct {
	Err     error
	Status  int
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the provided information.
func New(err error, status int, message string) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// EmptyVariantSet reports a configurable product whose variant set is empty.
func EmptyVariantSet(productID string) error {
	return &AppError{
		Err:     fmt.Errorf("product %s: %w", productID, ErrEmptyVariantSet),
		Status:  http.StatusUnprocessableEntity,
		Message: VariantErrorMessage,
	}
}

// WrapRender wraps a serialization error.
func WrapRender(err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Err:     err,
		Status:  http.StatusInternalServerError,
		Message: RenderErrorMessage,
	}
}

// WrapLookup wraps an error returned by a catalog, review or config source.
func WrapLookup(err error, what string) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Err:     fmt.Errorf("%s: %w", what, err),
		Status:  http.StatusBadGateway,
		Message: LookupErrorMessage,
	}
}

// StatusOf returns the HTTP status carried by err, or 500 for foreign errors.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Status != 0 {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// Is reports whether the target matches the underlying error or the AppError itself.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// As allows casting to AppError or the wrapped error in a chain.
func (e *AppError) As(target any) bool {
	if errors.As(e.Err, target) {
		return true
	}
	if t, ok := target.(**AppError); ok {
		*t = e
		return true
	}
	return false
}

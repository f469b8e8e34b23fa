package apperrors

import (
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
)

// Category is the coarse classification transport adapters use to pick a
// wire status. It is the only signal they consult.
type Category int

const (
	CategoryBadRequest Category = iota
	CategoryUnauthorized
	CategoryForbidden
	CategoryNotFound
	CategoryConflict
	CategoryInternal
)

// HTTPStatus maps the category to an HTTP status code.
func (c Category) HTTPStatus() int {
	switch c {
	case CategoryBadRequest:
		return http.StatusBadRequest
	case CategoryUnauthorized:
		return http.StatusUnauthorized
	case CategoryForbidden:
		return http.StatusForbidden
	case CategoryNotFound:
		return http.StatusNotFound
	case CategoryConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// GRPCCode maps the category to a gRPC status code.
func (c Category) GRPCCode() codes.Code {
	switch c {
	case CategoryBadRequest:
		return codes.InvalidArgument
	case CategoryUnauthorized:
		return codes.Unauthenticated
	case CategoryForbidden:
		return codes.PermissionDenied
	case CategoryNotFound:
		return codes.NotFound
	case CategoryConflict:
		return codes.AlreadyExists
	default:
		return codes.Internal
	}
}

// Error is the domain error: a stable machine-readable code, a category,
// and a human-readable message.
type Error struct {
	Code     string
	Category Category
	Message  string
}

func (e *Error) Error() string {
	return e.Message
}

func New(code string, category Category, message string) *Error {
	return &Error{Code: code, Category: category, Message: message}
}

func BadRequest(code, message string) *Error {
	return New(code, CategoryBadRequest, message)
}

func NotFound(code, message string) *Error {
	return New(code, CategoryNotFound, message)
}

func Internal(code, message string) *Error {
	return New(code, CategoryInternal, message)
}

// Predefined constructors. Each call returns a fresh value so callers may
// attach per-call message text without sharing state.

func ErrInternal() *Error {
	return Internal("E100001", "Internal error")
}

func ErrInvalidArgument() *Error {
	return BadRequest("E100002", "Invalid argument")
}

func ErrTenantNotFound() *Error {
	return NotFound("E200101", "Tenant not found")
}

func ErrStaffNotFound() *Error {
	return NotFound("E200201", "Staff not found")
}

// CategoryOf extracts the category from err. Errors from outside the domain
// taxonomy are treated as internal.
func CategoryOf(err error) Category {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Category
	}
	return CategoryInternal
}

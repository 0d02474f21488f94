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

// Price feed failures. None of these ever reach an API caller: the price
// feed service recovers each of them with a fallback value and logs it.
var (
	// ErrFetch indicates the upstream price index could not be reached or decoded.
	ErrFetch = errors.New("price feed fetch failed")
	// ErrFeedValidation indicates the upstream payload is structurally incomplete.
	ErrFeedValidation = errors.New("price feed payload invalid")
	// ErrRateParse indicates a rate string could not be converted to a number.
	ErrRateParse = errors.New("rate string unparsable")
	// ErrTimeFormat indicates an updated-time string could not be parsed.
	ErrTimeFormat = errors.New("timestamp unparsable")
)

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

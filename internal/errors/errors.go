package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors used across the billing core. Errors returned by the
// public APIs are always marked with exactly one of these.
var (
	ErrInvalidRule      = new(ErrCodeInvalidRule, "invalid recurrence rule")
	ErrCurrencyMismatch = new(ErrCodeCurrencyMismatch, "currency mismatch")
	ErrValidation       = new(ErrCodeValidation, "validation error")
	ErrInvalidOperation = new(ErrCodeInvalidOperation, "invalid operation")
	ErrSystem           = new(ErrCodeSystemError, "system error")
)

const (
	ErrCodeInvalidRule      = "invalid_rule"
	ErrCodeCurrencyMismatch = "currency_mismatch"
	ErrCodeValidation       = "validation_error"
	ErrCodeInvalidOperation = "invalid_operation"
	ErrCodeSystemError      = "system_error"
)

// InternalError represents a domain error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Op      string // Logical operation name
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

// new creates a new InternalError
func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsInvalidRule checks if an error is a recurrence rule parse error
func IsInvalidRule(err error) bool {
	return errors.Is(err, ErrInvalidRule)
}

// IsCurrencyMismatch checks if an error is a currency mismatch error
func IsCurrencyMismatch(err error) bool {
	return errors.Is(err, ErrCurrencyMismatch)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInvalidOperation checks if an error is an invalid operation error
func IsInvalidOperation(err error) bool {
	return errors.Is(err, ErrInvalidOperation)
}

// Hint returns the user-facing hint attached to the error, if any.
func Hint(err error) string {
	hints := errors.GetAllHints(err)
	if len(hints) == 0 {
		return ""
	}
	return hints[0]
}

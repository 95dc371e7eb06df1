package gateway

import (
	"errors"
	"fmt"
)

// ErrorCategory normalises provider failures.
type ErrorCategory string

const (
	CategoryTimeout        ErrorCategory = "timeout"
	CategoryProviderOutage ErrorCategory = "provider_outage"
	CategoryRateLimited    ErrorCategory = "rate_limited"
	CategoryCircuitOpen    ErrorCategory = "circuit_open"
	CategoryAuthentication ErrorCategory = "authentication"
	CategoryRejected       ErrorCategory = "rejected"
	CategoryNotFound       ErrorCategory = "not_found"
	CategoryBadResponse    ErrorCategory = "bad_response"
)

// Error wraps a provider failure with its category.
type Error struct {
	Category   ErrorCategory
	Operation  string
	Message    string
	Underlying error
	Retryable  bool
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("payout gateway %s [%s]: %s: %v", e.Operation, e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("payout gateway %s [%s]: %s", e.Operation, e.Category, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

func NewError(category ErrorCategory, operation, message string, underlying error) *Error {
	retryable := category == CategoryTimeout ||
		category == CategoryProviderOutage ||
		category == CategoryRateLimited ||
		category == CategoryCircuitOpen
	return &Error{
		Category:   category,
		Operation:  operation,
		Message:    message,
		Underlying: underlying,
		Retryable:  retryable,
	}
}

func IsRetryable(err error) bool {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Retryable
	}
	return false
}

// CategoryOf returns the category of a gateway error, or provider_outage for
// anything else.
func CategoryOf(err error) ErrorCategory {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Category
	}
	return CategoryProviderOutage
}

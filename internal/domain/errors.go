package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Domain validation errors
const (
	ErrCodeInvalidAmount    = "INVALID_AMOUNT"
	ErrCodeSessionNotFound  = "SESSION_NOT_FOUND"
	ErrCodeSignatureInvalid = "SIGNATURE_INVALID"
	ErrCodeMissingField     = "MISSING_REQUIRED_FIELD"
)

func NewInvalidAmountError(amountCents int64) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: fmt.Sprintf("Amount must be at least $0.50, got %d", amountCents),
	}
}

func NewMissingRequiredFieldError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewSignatureInvalidError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeSignatureInvalid,
		Message: "webhook signature verification failed",
		Err:     err,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

package application

import (
	"errors"
	"fmt"
	"net/http"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeUnauthenticated  = "UNAUTHENTICATED"
	ErrCodeNotConfigured    = "NOT_CONFIGURED"
	ErrCodeInvalidInput     = "INVALID_INPUT"
	ErrCodeUpstreamFailure  = "UPSTREAM_FAILURE"
	ErrCodeSignatureInvalid = "SIGNATURE_INVALID"
	ErrCodeTimeout          = "TIMEOUT"
	ErrCodeInternal         = "INTERNAL_ERROR"
)

func NewUnauthenticatedError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeUnauthenticated,
		Message:    "Not authenticated",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewNotConfiguredError marks a missing external credential. This is an
// operator error, surfaced as 501 so it is never mistaken for a runtime
// fault.
func NewNotConfiguredError(integration, hint string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeNotConfigured,
		Message:    fmt.Sprintf("%s not configured: %s", integration, hint),
		HTTPStatus: http.StatusNotImplemented,
	}
}

func NewInvalidInputError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidInput,
		Message:    err.Error(),
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

// NewUpstreamFailureError wraps a provider or processor failure. The wrapped
// error is logged, never echoed to the caller.
func NewUpstreamFailureError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeUpstreamFailure,
		Message:    "Failed to create payment intent",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewSignatureInvalidError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeSignatureInvalid,
		Message:    "Webhook signature verification failed",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewTimeoutError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeTimeout,
		Message:    "Request timed out waiting for completion",
		HTTPStatus: http.StatusRequestTimeout,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}

package stripe

import (
	"errors"
	"fmt"
)

type ProcessorError struct {
	Type       string
	Code       string
	Message    string
	StatusCode int
}

type stripeErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (e *ProcessorError) Error() string {
	return fmt.Sprintf("stripe error [%s/%s]: %s (status: %d)", e.Type, e.Code, e.Message, e.StatusCode)
}

func IsProcessorError(err error) (*ProcessorError, bool) {
	var procErr *ProcessorError
	ok := errors.As(err, &procErr)
	return procErr, ok
}

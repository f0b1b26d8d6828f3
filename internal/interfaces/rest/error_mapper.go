package rest

import (
	"encoding/json"
	"net/http"

	"github.com/DanielPopoola/ficmart-checkout/internal/application"
)

type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// BuildErrorResponse maps an error to its HTTP status and wire envelope.
func BuildErrorResponse(err error) (int, ErrorResponse) {
	return application.ToHTTPStatus(err), ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Code:    application.ToErrorCode(err),
			Message: publicMessage(err),
		},
	}
}

// WriteError maps application errors to HTTP responses
func WriteError(w http.ResponseWriter, err error) {
	statusCode, response := BuildErrorResponse(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}

// publicMessage strips wrapped internal detail from upstream failures; the
// ServiceError message is caller-safe, the wrapped error is not.
func publicMessage(err error) string {
	if svcErr, ok := application.IsServiceError(err); ok {
		return svcErr.Message
	}
	return err.Error()
}

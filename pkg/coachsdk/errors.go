package coachsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ultracoach/ultracoach/pkg/httpx"
)

// Error codes carried in the "error" field of failure envelopes.
const (
	ErrorCodeInvalidRequest     = "INVALID_REQUEST"
	ErrorCodeIDMissing          = "ID_MISSING"
	ErrorCodeUnauthorized       = "UNAUTHORIZED"
	ErrorCodeForbidden          = "FORBIDDEN"
	ErrorCodeNotFound           = "NOT_FOUND"
	ErrorCodeInvalidStatus      = "INVALID_STATUS"
	ErrorCodeResendLimit        = "RESEND_LIMIT"
	ErrorCodeEmailTaken         = "EMAIL_TAKEN"
	ErrorCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrorCodeRateLimited        = "RATE_LIMITED"
	ErrorCodeInternal           = "INTERNAL_ERROR"
)

// APIError is a structured failure from the coaching service. It is used
// both server-side, to write failure envelopes, and client-side, to
// represent them after parsing.
type APIError struct {
	// StatusCode is the HTTP status this error travels with.
	StatusCode int `json:"-"`

	// Code is the machine-readable error code, e.g. "RESEND_LIMIT".
	Code string `json:"error"`

	// Message is the human-readable description.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes the failure envelope to an HTTP response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error:   e.Code,
		Message: e.Message,
	})
}

// NewAPIError builds a custom APIError when none of the predefined ones
// carries the right message.
func NewAPIError(statusCode int, code, message string) *APIError {
	return &APIError{StatusCode: statusCode, Code: code, Message: message}
}

var (
	ErrInvalidRequest = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidRequest,
		Message:    "the request is malformed or missing required parameters",
	}

	ErrIDMissing = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeIDMissing,
		Message:    "an id path parameter is required",
	}

	ErrUnauthorized = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeUnauthorized,
		Message:    "authentication required",
	}

	ErrForbidden = &APIError{
		StatusCode: http.StatusForbidden,
		Code:       ErrorCodeForbidden,
		Message:    "you are not allowed to perform this action",
	}

	ErrNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodeNotFound,
		Message:    "the requested resource does not exist",
	}

	ErrResendLimit = &APIError{
		StatusCode: http.StatusTooManyRequests,
		Code:       ErrorCodeResendLimit,
		Message:    "this invitation has reached its resend limit",
	}

	ErrEmailTaken = &APIError{
		StatusCode: http.StatusConflict,
		Code:       ErrorCodeEmailTaken,
		Message:    "an account with this email already exists",
	}

	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeInvalidCredentials,
		Message:    "invalid email or password",
	}

	ErrInternal = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeInternal,
		Message:    "internal server error",
	}
)

// InvalidStatusError builds the INVALID_STATUS failure, naming the
// invitation's current status so the caller can explain it.
func InvalidStatusError(currentStatus string) *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidStatus,
		Message:    fmt.Sprintf("invitation is %s, not pending", currentStatus),
	}
}

// InvalidInvitationError is the deliberately vague failure for expired,
// consumed, and unknown tokens.
func InvalidInvitationError() *APIError {
	return &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodeNotFound,
		Message:    "This invitation is expired or invalid.",
	}
}

// parseErrorResponse turns a non-2xx HTTP response into a typed *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var envelope ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       envelope.Error,
			Message:    envelope.Message,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       ErrorCodeInternal,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}

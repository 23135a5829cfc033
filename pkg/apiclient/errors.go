package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/taskflowhq/taskflow/pkg/httpx"
)

// Error kinds returned in the "error" field of failure responses.
const (
	ErrorKindValidation         = "validation_error"
	ErrorKindDuplicateUser      = "duplicate_user"
	ErrorKindInvalidCredentials = "invalid_credentials"
	ErrorKindInvalidToken       = "invalid_token"
	ErrorKindExpiredToken       = "expired_token"
	ErrorKindForbidden          = "forbidden"
	ErrorKindNotFound           = "not_found"
	ErrorKindRateLimited        = "rate_limited"
	ErrorKindServerError        = "server_error"
)

// APIError is the wire format for every failure response. It implements the
// error interface and is used both by the server (to write HTTP responses)
// and by the client (to represent errors returned from the API).
type APIError struct {
	// StatusCode is the HTTP status code for this error.
	StatusCode int `json:"-"`

	// Kind is the machine-readable error kind (e.g. "validation_error").
	Kind string `json:"error"`

	// Message is a human-readable description of the error.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// WithMessage returns a copy of the error with a different human-readable
// message, keeping the kind and status code.
func (e *APIError) WithMessage(msg string) *APIError {
	return &APIError{StatusCode: e.StatusCode, Kind: e.Kind, Message: msg}
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(e)
}

// Predefined errors for the common failure cases. Handlers customise the
// message with WithMessage where the caller benefits from detail.
var (
	ErrValidation = &APIError{
		StatusCode: http.StatusBadRequest,
		Kind:       ErrorKindValidation,
		Message:    "the request is malformed or missing required fields",
	}

	ErrDuplicateUser = &APIError{
		StatusCode: http.StatusConflict,
		Kind:       ErrorKindDuplicateUser,
		Message:    "an account with that email or username already exists",
	}

	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Kind:       ErrorKindInvalidCredentials,
		Message:    "invalid email or password",
	}

	ErrInvalidToken = &APIError{
		StatusCode: http.StatusUnauthorized,
		Kind:       ErrorKindInvalidToken,
		Message:    "the access token is missing or invalid",
	}

	ErrExpiredToken = &APIError{
		StatusCode: http.StatusUnauthorized,
		Kind:       ErrorKindExpiredToken,
		Message:    "the access token has expired",
	}

	ErrForbidden = &APIError{
		StatusCode: http.StatusForbidden,
		Kind:       ErrorKindForbidden,
		Message:    "you do not have permission to perform this action",
	}

	ErrNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Kind:       ErrorKindNotFound,
		Message:    "the requested resource does not exist",
	}

	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Kind:       ErrorKindServerError,
		Message:    "an internal error occurred",
	}
)

// parseErrorResponse converts a non-success HTTP response into an *APIError.
// If the body is not a valid error payload, a generic error carrying the
// status code is returned instead.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Kind != "" {
		apiErr.StatusCode = resp.StatusCode
		return &apiErr
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Kind:       ErrorKindServerError,
		Message:    fmt.Sprintf("unexpected response status %d", resp.StatusCode),
	}
}

package http

import (
	"fmt"
	"net/http"
)

// AppError represents application-level error with HTTP status.
type AppError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Params  map[string]interface{} `json:"params,omitempty"`
	Status  int                    `json:"-"`
	Err     error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error.
func NewAppError(code, message string, status int) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Params:  make(map[string]interface{}),
	}
}

// WithParam sets a single error param.
func (e *AppError) WithParam(key string, value interface{}) *AppError {
	if e.Params == nil {
		e.Params = make(map[string]interface{})
	}
	e.Params[key] = value
	return e
}

// WithError wraps an underlying error.
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// ConfigurationError signals a missing webhook URL. Recoverable only by
// operator reconfiguration, so it maps to 500 rather than a 4xx.
func ConfigurationError() *AppError {
	return NewAppError("ERR_CONFIG", "Internal server configuration error", http.StatusInternalServerError)
}

// PayloadError creates a 400 error for bad or undecodable request bodies.
func PayloadError(message string) *AppError {
	return NewAppError("ERR_PAYLOAD", message, http.StatusBadRequest)
}

// UnauthorizedError creates a 403 error for shared-secret mismatches.
func UnauthorizedError() *AppError {
	return NewAppError("ERR_UNAUTHORIZED", "Unauthorized", http.StatusForbidden)
}

// UpstreamError creates a 502 error carrying the downstream response body.
func UpstreamError(body string) *AppError {
	return NewAppError("ERR_UPSTREAM", "Failed to relay message to Discord", http.StatusBadGateway).
		WithParam("discord_response", body)
}

// TransportError creates a 503 error for timeouts and connection failures.
func TransportError(err error) *AppError {
	return NewAppError("ERR_TRANSPORT", "Could not connect to Discord", http.StatusServiceUnavailable).
		WithError(err)
}

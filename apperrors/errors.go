package apperrors

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Stable machine-readable error kinds returned in API responses.
const (
	KindValidation       = "validation_error"
	KindConfiguration    = "configuration_error"
	KindInvalidSignature = "invalid_signature"
	KindGateway          = "gateway_error"
	KindStore            = "store_error"
	KindUnauthorized     = "unauthorized"
	KindInternal         = "internal_error"
)

// Error represents an application error with its HTTP mapping.
// The wrapped cause is kept for server-side logs only and is never
// serialized, so provider responses and DSNs don't leak to clients.
type Error struct {
	Kind    string `json:"kind"`
	Status  int    `json:"-"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(kind string, status int, message string, err error) *Error {
	return &Error{
		Kind:    kind,
		Status:  status,
		Message: message,
		Err:     err,
	}
}

// Validation marks malformed or missing caller input (4xx).
func Validation(message string) *Error {
	return New(KindValidation, http.StatusBadRequest, message, nil)
}

// Configuration marks a missing secret or credential (5xx, operator-fixable).
func Configuration(message string) *Error {
	return New(KindConfiguration, http.StatusInternalServerError, message, nil)
}

// InvalidSignature marks a failed authenticity check (4xx).
// Callers should log these distinctly from ordinary validation failures.
func InvalidSignature(message string) *Error {
	return New(KindInvalidSignature, http.StatusBadRequest, message, nil)
}

// Gateway marks an upstream payment-provider failure (5xx, not retried).
func Gateway(message string, err error) *Error {
	return New(KindGateway, http.StatusInternalServerError, message, err)
}

// Store marks a persistence failure (5xx, safe for clients to retry).
func Store(message string, err error) *Error {
	return New(KindStore, http.StatusInternalServerError, message, err)
}

// Unauthorized marks a failed auth check on an admin endpoint.
func Unauthorized(message string) *Error {
	return New(KindUnauthorized, http.StatusUnauthorized, message, nil)
}

// Respond writes err as a JSON error response. Unknown error types are
// masked as a generic internal error so details never reach the client.
func Respond(c *gin.Context, err error) {
	appErr, ok := err.(*Error)
	if !ok {
		appErr = New(KindInternal, http.StatusInternalServerError, "Internal server error", err)
	}
	c.JSON(appErr.Status, gin.H{"error": appErr.Message, "kind": appErr.Kind})
}

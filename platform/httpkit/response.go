// Package httpkit provides HTTP response utilities.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"net/http"
	"time"

	"automation_hub_backend/platform/apperr"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error response format.
// Every error carries an RFC 3339 timestamp so webhook callers can
// correlate failures with their own delivery logs.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp"`
}

// NewErrorResponse builds an error envelope with the current timestamp.
func NewErrorResponse(errCode, message string) ErrorResponse {
	return ErrorResponse{
		Error:     errCode,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// JSON sends a JSON response with the given status code.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// Error sends an error response with the given status code and message.
func Error(c *gin.Context, status int, errCode, message string) {
	c.JSON(status, NewErrorResponse(errCode, message))
}

// OK sends a 200 OK response with the given payload.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// HandleError maps domain errors to HTTP responses.
// If the error is a typed *apperr.Error, it uses the error's Kind to determine
// the HTTP status code. Otherwise, it defaults to 500 Internal Server Error.
// Returns true if an error was handled, false otherwise.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	if domainErr, ok := err.(*apperr.Error); ok {
		c.JSON(domainErr.HTTPStatus(), NewErrorResponse(kindCode(domainErr.Kind), domainErr.Message))
		return true
	}

	c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", err.Error()))
	return true
}

func kindCode(kind apperr.Kind) string {
	switch kind {
	case apperr.KindNotFound:
		return "not_found"
	case apperr.KindValidation:
		return "invalid_argument"
	case apperr.KindBadRequest:
		return "bad_request"
	case apperr.KindForbidden:
		return "forbidden"
	case apperr.KindConfiguration:
		return "configuration_error"
	case apperr.KindUpstream:
		return "upstream_error"
	default:
		return "internal_error"
	}
}

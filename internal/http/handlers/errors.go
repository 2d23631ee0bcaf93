package handlers

import (
	"net/http"

	"navmind/internal/domain"
	"navmind/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Details:   details,
		RequestID: middleware.GetRequestID(c),
	})
}

// statusFor maps domain errors to an HTTP status and error code.
func statusFor(err error) (int, string) {
	switch {
	case domain.IsValidation(err):
		return http.StatusBadRequest, "validation_error"
	case domain.IsUnauthorized(err):
		return http.StatusUnauthorized, "unauthorized"
	case domain.IsNotFound(err):
		return http.StatusNotFound, "not_found"
	case domain.IsConflict(err):
		return http.StatusConflict, "conflict"
	case domain.IsUpstream(err):
		return http.StatusBadGateway, "upstream_error"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// RespondDomainError maps domain errors to HTTP responses.
// Pipeline failures are surfaced verbatim; anything unclassified is not.
func RespondDomainError(c *gin.Context, err error) {
	status, code := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError && !domain.IsInternal(err) {
		msg = "internal error"
	}
	respondError(c, status, code, msg, nil)
}

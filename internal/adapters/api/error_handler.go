package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdesk.app/internal/ports"
	errorspkg "weatherdesk.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind"`
	RequestID string `json:"request_id,omitempty"`
}

// statusFor maps an error kind to its HTTP status
func statusFor(kind errorspkg.ErrorType) int {
	switch kind {
	case errorspkg.ValidationError:
		return http.StatusBadRequest
	case errorspkg.NotFoundError:
		return http.StatusNotFound
	case errorspkg.NetworkError, errorspkg.DataError:
		return http.StatusBadGateway
	case errorspkg.ConfigurationError:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// handleError handles different types of application errors
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	response := ErrorResponse{
		Error:     "Internal server error",
		Kind:      errorspkg.ErrorTypeUnknown.String(),
		RequestID: c.GetString(requestIDKey),
	}

	var appErr *errorspkg.AppError
	if errors.As(err, &appErr) {
		response.Error = appErr.Message
		response.Kind = appErr.Type.String()
	}

	status := statusFor(errorspkg.TypeOf(err))
	if status >= http.StatusInternalServerError && s.logger != nil {
		s.logger.Warn("Request failed",
			ports.F("request_id", response.RequestID),
			ports.F("path", c.Request.URL.Path),
			ports.F("status", status),
			ports.F("error", err.Error()))
	}

	c.AbortWithStatusJSON(status, response)
}

// Package response centralizes HTTP response shapes and helpers.
// Handlers rely on it to keep controllers thin and uniform.
package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/country-list-service/internal/service"
)

// ErrorPayload is the canonical error envelope returned by the API.
// Only the fields relevant to the error kind are populated.
type ErrorPayload struct {
	Error           string   `json:"error"`
	Message         string   `json:"message,omitempty"`
	ValidRange      string   `json:"validRange,omitempty"`
	MaxAllowed      int      `json:"maxAllowed,omitempty"`
	AvailableRoutes []string `json:"availableRoutes,omitempty"`
}

// RouteNotFoundError describes a request that matched no route.
type RouteNotFoundError struct {
	Path            string
	AvailableRoutes []string
}

func (e *RouteNotFoundError) Error() string { return fmt.Sprintf("route %s not found", e.Path) }

// InternalPayload is the only thing a client ever learns about an unexpected fault.
var InternalPayload = ErrorPayload{
	Error:   "Internal Server Error",
	Message: "Something went wrong on our end",
}

// MapError converts a domain error into an HTTP status and payload.
// Anything unrecognized is an internal fault and is reported generically.
func MapError(err error) (int, ErrorPayload) {
	if err == nil {
		return http.StatusOK, ErrorPayload{Error: "ok"}
	}

	if pe, ok := service.AsPageError(err); ok {
		payload := ErrorPayload{Message: pe.Message}
		switch {
		case errors.Is(pe, service.ErrInvalidOffset):
			payload.Error = "Invalid offset"
			payload.ValidRange = pe.ValidRange
		case errors.Is(pe, service.ErrInvalidLimit):
			payload.Error = "Invalid limit"
			payload.MaxAllowed = pe.MaxAllowed
		default:
			payload.Error = "Invalid pagination"
		}
		return http.StatusBadRequest, payload
	}

	var nf *RouteNotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound, ErrorPayload{
			Error:           "Not Found",
			Message:         fmt.Sprintf("The requested route %s does not exist", nf.Path),
			AvailableRoutes: nf.AvailableRoutes,
		}
	}

	return http.StatusInternalServerError, InternalPayload
}

// WriteError writes an error response and aborts the context.
func WriteError(c *gin.Context, err error) {
	status, payload := MapError(err)
	c.AbortWithStatusJSON(status, payload)
}

// WriteData writes a successful JSON response.
func WriteData(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

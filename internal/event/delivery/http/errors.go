package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"eventsnap/internal/event"
	"eventsnap/pkg/response"
)

// mapError translates domain errors into HTTP responses. Unknown errors
// become a generic 500 so internals never leak to clients.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, event.ErrMissingRequiredField),
		errors.Is(err, event.ErrNotAnImage),
		errors.Is(err, event.ErrImageTooLarge):
		response.Error(c, err)
	case errors.Is(err, event.ErrCalendarNotConfigured),
		errors.Is(err, event.ErrShareFailed),
		errors.Is(err, event.ErrExtractionFailed):
		response.Unavailable(c, err)
	default:
		response.InternalError(c)
	}
}

package http

import (
	"github.com/gin-gonic/gin"

	"eventsnap/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Extraction is the only expensive route; it alone is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	events := rg.Group("/events")
	{
		events.POST("/extract", mw.RateLimit(), h.Extract)
		events.POST("/ics", h.GenerateInvite)
		events.POST("/link", h.BuildLink)
		events.POST("/share", h.Share)
		events.POST("/calendar", h.CreateCalendarEvent)
		events.GET("", h.List)
	}
}

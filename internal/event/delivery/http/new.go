package http

import (
	"github.com/gin-gonic/gin"

	"eventsnap/internal/event"
	"eventsnap/pkg/log"
)

// Handler is the public interface for the event HTTP delivery layer.
type Handler interface {
	Extract(c *gin.Context)
	GenerateInvite(c *gin.Context)
	BuildLink(c *gin.Context)
	Share(c *gin.Context)
	CreateCalendarEvent(c *gin.Context)
	List(c *gin.Context)
}

type handler struct {
	l              log.Logger
	uc             event.UseCase
	maxUploadBytes int64
}

// New creates a new HTTP handler for the event domain.
func New(l log.Logger, uc event.UseCase, maxUploadBytes int64) *handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 10 << 20
	}
	return &handler{
		l:              l,
		uc:             uc,
		maxUploadBytes: maxUploadBytes,
	}
}

package http

import (
	"github.com/gin-gonic/gin"

	"eventsnap/pkg/ics"
	"eventsnap/pkg/response"
)

// Extract godoc
// @Summary     Extract event details from a flyer image
// @Description Runs the uploaded flyer through the vision model and returns a structured event record. Unreadable flyers still return a record with empty fields and the raw text as description.
// @Tags        Events
// @Accept      multipart/form-data
// @Produce     json
// @Param       image formData file true "Flyer image (PNG/JPEG/WebP)"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Bad Request - not an image or too large"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     503 {object} response.Resp "Service Unavailable - extraction backend down"
// @Router      /api/v1/events/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Extract(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newExtractResp(output))
}

// GenerateInvite godoc
// @Summary     Download a calendar invite for an event
// @Description Renders the event as a .ics file and returns it as a browser download. Title and date are required; everything else falls back to documented defaults.
// @Tags        Events
// @Accept      json
// @Produce     text/calendar
// @Param       body body exportReq true "Event fields"
// @Success     200 {string} string "ICS document"
// @Failure     400 {object} response.Resp "Bad Request - missing title or date"
// @Router      /api/v1/events/ics [POST]
func (h *handler) GenerateInvite(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GenerateInvite(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateInvite: %v", err)
		h.mapError(c, err)
		return
	}

	response.File(c, output.Filename, ics.ContentType, output.Body)
}

// BuildLink godoc
// @Summary     Build a prefilled Google Calendar link
// @Description Returns a calendar.google.com render URL with the event fields prefilled.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body exportReq true "Event fields"
// @Success     200 {object} linkResp
// @Failure     400 {object} response.Resp "Bad Request - missing title or date"
// @Router      /api/v1/events/link [POST]
func (h *handler) BuildLink(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	link, err := h.uc.BuildLink(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.BuildLink: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, linkResp{Link: link})
}

// Share godoc
// @Summary     Share an event summary
// @Description Pushes a one-line event summary (plus calendar link) through the host share cascade and reports which channel delivered it.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body exportReq true "Event fields"
// @Success     200 {object} shareResp
// @Failure     400 {object} response.Resp "Bad Request - missing title or date"
// @Failure     503 {object} response.Resp "Service Unavailable - every share channel failed"
// @Router      /api/v1/events/share [POST]
func (h *handler) Share(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Share(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Share: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newShareResp(output))
}

// CreateCalendarEvent godoc
// @Summary     Insert the event into Google Calendar
// @Description Creates the event directly in the configured calendar and returns its id and link.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body exportReq true "Event fields"
// @Success     200 {object} calendarResp
// @Failure     400 {object} response.Resp "Bad Request - missing title or date"
// @Failure     503 {object} response.Resp "Service Unavailable - calendar not configured"
// @Router      /api/v1/events/calendar [POST]
func (h *handler) CreateCalendarEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateCalendarEvent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateCalendarEvent: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newCalendarResp(output))
}

// List godoc
// @Summary     List extraction history
// @Description Returns previously extracted events, newest first.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       limit  query int false "Page size (default: 50, max: 200)"
// @Param       offset query int false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

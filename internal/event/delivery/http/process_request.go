package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"eventsnap/internal/event"
)

// processExtractReq pulls the uploaded flyer out of the multipart form.
// Form field name: "image".
func (h *handler) processExtractReq(c *gin.Context) (event.ExtractInput, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return event.ExtractInput{}, err
	}
	if fileHeader.Size > h.maxUploadBytes {
		return event.ExtractInput{}, event.ErrImageTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return event.ExtractInput{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		return event.ExtractInput{}, err
	}
	if int64(len(data)) > h.maxUploadBytes {
		return event.ExtractInput{}, event.ErrImageTooLarge
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		// Browsers sometimes omit or mislabel the part type; sniff before
		// rejecting.
		mimeType = http.DetectContentType(data)
	}

	return event.ExtractInput{MIMEType: mimeType, Data: data}, nil
}

// processExportReq binds and validates the event fields shared by every
// export route.
func (h *handler) processExportReq(c *gin.Context) (exportReq, error) {
	var req exportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds the history paging query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

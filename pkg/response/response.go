package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// File sends raw bytes as a browser download with the given filename.
func File(c *gin.Context, filename, contentType string, body []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, body)
}

// Error sends a 400 error response carrying the error message.
func Error(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: BadRequestErrorCode,
		Message:   err.Error(),
	})
}

// NotFound sends a 404 response carrying the error message.
func NotFound(c *gin.Context, err error) {
	c.JSON(http.StatusNotFound, Resp{
		ErrorCode: NotFoundErrorCode,
		Message:   err.Error(),
	})
}

// Unavailable sends 503 when a dependent capability is missing or unreachable.
func Unavailable(c *gin.Context, err error) {
	c.JSON(http.StatusServiceUnavailable, Resp{
		ErrorCode: UnavailableErrorCode,
		Message:   err.Error(),
	})
}

// TooManyRequests sends 429 for rate-limited clients.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, Resp{
		ErrorCode: TooManyRequestsErrorCode,
		Message:   "Too many requests",
	})
}

// InternalError sends 500 with a generic message, never leaking internals.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

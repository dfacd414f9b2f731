package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Cors answers preflight requests and stamps the allowed-origin headers.
// Origins come from config; "*" allows any origin.
func (m Middleware) Cors() gin.HandlerFunc {
	allowed := make(map[string]bool, len(m.config.CORS.Origins))
	allowAny := false
	for _, origin := range m.config.CORS.Origins {
		if origin == "*" {
			allowAny = true
		}
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (allowAny || allowed[origin]) {
			if allowAny {
				c.Header("Access-Control-Allow-Origin", "*")
			} else {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
			}
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

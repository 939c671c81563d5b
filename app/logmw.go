package app

import (
	"time"

	"dresshub/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every request with timing.
func RequestLogger(c *gin.Context) {
	start := time.Now()

	c.Next()

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

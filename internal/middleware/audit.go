package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"revos/internal/service"
)

// Audit records every completed command into the audit log. The tool name is
// the route pattern, so /elements/42 and /elements/7 count as one tool.
func Audit(commands service.CommandService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		msg := ""
		if len(c.Errors) > 0 {
			msg = c.Errors.String()
		}
		commands.Record(c.Request.Context(), service.CommandRecord{
			RequestID:  GetRequestID(c),
			Tool:       c.FullPath(),
			Method:     c.Request.Method,
			Status:     status,
			Success:    status < 400,
			Message:    msg,
			DurationMS: time.Since(start).Milliseconds(),
		})
	}
}

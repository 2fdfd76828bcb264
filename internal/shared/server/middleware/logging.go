package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-analytics/internal/shared/telemetry"
)

// Logging emits one structured line per request. Server errors are logged
// at error level and client errors at warn.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := requestFields(c)
		fields["route"] = c.FullPath()
		fields["status"] = status
		fields["duration_ms"] = float64(time.Since(start).Microseconds()) / 1000.0
		fields["client_ip"] = c.ClientIP()
		fields["user_agent"] = c.Request.UserAgent()
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		switch {
		case status >= http.StatusInternalServerError:
			telemetry.Error("request.complete", fields)
		case status >= http.StatusBadRequest:
			telemetry.Warn("request.complete", fields)
		default:
			telemetry.Info("request.complete", fields)
		}
	}
}

// requestFields collects the identifiers handlers attach to the context.
func requestFields(c *gin.Context) map[string]any {
	return map[string]any{
		"request_id":  RequestIDFromContext(c),
		"method":      c.Request.Method,
		"path":        c.Request.URL.Path,
		"user_id":     c.GetString(userIDKey),
		"resume_id":   c.GetString("resumeId"),
		"analysis_id": c.GetString("analysisId"),
	}
}

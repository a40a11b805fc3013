package server

import (
	"time"

	handler "storefront-engine/services/storefront/handler"
	"storefront-engine/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing, tagged with
// the session the request ran under so facade logs line up with the
// guest/authenticated flows on the backend side.
func RequestLoggerMiddleware(session handler.SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next() // process request

		sess := session.Current()
		utils.Info("HTTP Request", map[string]any{
			"method":       c.Request.Method,
			"path":         c.Request.URL.Path,
			"status":       c.Writer.Status(),
			"latency":      time.Since(start).String(),
			"session_kind": string(sess.Kind),
			"session_id":   sess.Identifier,
		})
	}
}

package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/haierkeys/simple-notes-service/pkg/app"
	"github.com/haierkeys/simple-notes-service/pkg/code"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoveryWithLogger turns handler panics into a logged 500 response.
func RecoveryWithLogger(lg *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery
		defer func() {
			if err := recover(); err != nil {
				var errorMsg string
				switch e := err.(type) {
				case error:
					lg.Error("Recovered from panic",
						zap.Int("status", c.Writer.Status()),
						zap.String("router", path),
						zap.String("method", c.Request.Method),
						zap.String("query", query),
						zap.String("ip", c.ClientIP()),
						zap.String("user-agent", c.Request.UserAgent()),
						zap.Error(e),
						zap.String("stack", string(debug.Stack())),
					)
					errorMsg = e.Error()
				default:
					lg.Error("Recovered from unknown panic",
						zap.Int("status", c.Writer.Status()),
						zap.String("router", path),
						zap.String("method", c.Request.Method),
						zap.String("query", query),
						zap.String("ip", c.ClientIP()),
						zap.String("user-agent", c.Request.UserAgent()),
						zap.String("panic_value", fmt.Sprintf("%v", err)),
						zap.String("stack", string(debug.Stack())),
					)
					errorMsg = fmt.Sprintf("%v", err)
				}

				app.NewResponse(c).ToResponse(code.ErrorServerInternal.WithDetails(errorMsg))
				c.Abort()
			}
		}()

		c.Next()
	}
}

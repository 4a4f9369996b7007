package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultTraceIDHeader default trace id header name
	DefaultTraceIDHeader = "X-Trace-ID"
	// TraceIDKey context key the trace id is stored under
	TraceIDKey = "trace_id"
)

// TraceMiddlewareWithConfig takes the trace id from the request header or
// generates one, stores it in both contexts and echoes it in the response.
func TraceMiddlewareWithConfig(enabled bool, headerName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			c.Next()
			return
		}

		if headerName == "" {
			headerName = DefaultTraceIDHeader
		}

		traceID := c.GetHeader(headerName)
		if traceID == "" {
			traceID = generateTraceID()
		}

		c.Set(TraceIDKey, traceID)

		ctx := context.WithValue(c.Request.Context(), TraceIDKey, traceID)
		c.Request = c.Request.WithContext(ctx)

		c.Header(headerName, traceID)

		c.Next()
	}
}

// generateTraceID builds a {timestamp_nano}-{random_hex} id.
func generateTraceID() string {
	randomBytes := make([]byte, 8)
	if _, err := rand.Read(randomBytes); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}

	return fmt.Sprintf("%d-%s",
		time.Now().UnixNano(),
		hex.EncodeToString(randomBytes)[:8])
}

// GetTraceID reads the trace id from a context.Context.
func GetTraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(TraceIDKey).(string); ok {
		return id
	}
	return ""
}

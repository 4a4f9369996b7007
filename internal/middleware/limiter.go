package middleware

import (
	"github.com/haierkeys/simple-notes-service/pkg/app"
	"github.com/haierkeys/simple-notes-service/pkg/code"
	"github.com/haierkeys/simple-notes-service/pkg/limiter"

	"github.com/gin-gonic/gin"
)

// RateLimiter rejects requests once the route's token bucket is empty.
func RateLimiter(l limiter.Face) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := l.Key(c)
		if bucket, ok := l.GetBucket(key); ok {
			count := bucket.TakeAvailable(1)
			if count == 0 {
				response := app.NewResponse(c)
				response.ToResponse(code.ErrorTooManyRequests)
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

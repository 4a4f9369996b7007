// Package limiter provides per-route token bucket rate limiting.
package limiter

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/ratelimit"
)

// Face is the limiter interface consumed by the rate limit middleware.
type Face interface {
	Key(c *gin.Context) string
	GetBucket(key string) (*ratelimit.Bucket, bool)
	AddBuckets(rules ...BucketRule) Face
}

// BucketRule describes one token bucket.
type BucketRule struct {
	// Key the bucket is registered under, matched against the request path.
	Key string
	// FillInterval between token refills.
	FillInterval time.Duration
	// Capacity of the bucket.
	Capacity int64
	// Quantum tokens added per refill.
	Quantum int64
}

// Limiter holds the registered buckets.
type Limiter struct {
	limiterBuckets map[string]*ratelimit.Bucket
}

// MethodLimiter limits by request path.
type MethodLimiter struct {
	*Limiter
}

func NewMethodLimiter() Face {
	return MethodLimiter{
		Limiter: &Limiter{limiterBuckets: make(map[string]*ratelimit.Bucket)},
	}
}

func (l MethodLimiter) Key(c *gin.Context) string {
	return c.Request.URL.Path
}

func (l MethodLimiter) GetBucket(key string) (*ratelimit.Bucket, bool) {
	bucket, ok := l.limiterBuckets[key]
	return bucket, ok
}

func (l MethodLimiter) AddBuckets(rules ...BucketRule) Face {
	for _, rule := range rules {
		if _, ok := l.limiterBuckets[rule.Key]; !ok {
			l.limiterBuckets[rule.Key] = ratelimit.NewBucketWithQuantum(
				rule.FillInterval, rule.Capacity, rule.Quantum)
		}
	}
	return l
}

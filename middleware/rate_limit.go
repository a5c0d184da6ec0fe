package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	rateLimitPeriod = 1 * time.Minute
	rateLimitCount  = 5
)

// RateLimiter caps auth-route requests per client IP using a Redis
// fixed-window counter. With no Redis client it is a no-op.
func RateLimiter(client *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		key := "rate_limit:" + c.ClientIP()

		count, err := client.Incr(c.Request.Context(), key).Result()
		if err != nil {
			// Redis trouble should not block logins
			c.Next()
			return
		}

		if count == 1 {
			client.Expire(c.Request.Context(), key, rateLimitPeriod)
		}

		if count > rateLimitCount {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}

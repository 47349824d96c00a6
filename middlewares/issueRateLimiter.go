package middlewares

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const rateLimitWindow = 24 * time.Hour

// IssueRateLimiter caps report submissions per user (or client IP) per day.
// Redis failures let the request through.
func IssueRateLimiter(rdb *redis.Client, prefix string, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || limit <= 0 {
			c.Next()
			return
		}

		subject := c.ClientIP()
		if userID, ok := c.Get("user_id"); ok {
			if id, _ := userID.(string); id != "" {
				subject = id
			}
		}
		key := prefix + ":" + subject
		ctx := c.Request.Context()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("Rate limiter unavailable: %v", err)
			c.Next()
			return
		}

		// Set TTL only for the first increment
		if count == 1 {
			if err := rdb.Expire(ctx, key, rateLimitWindow).Err(); err != nil {
				log.Printf("Rate limiter expire %s: %v", key, err)
			}
		}

		if count > int64(limit) {
			retryAfter, _ := rdb.TTL(ctx, key).Result()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success":     false,
				"message":     "Daily report limit reached",
				"retry_after": retryAfter.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

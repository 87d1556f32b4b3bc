package middlewares

import (
	"net/http"
	"os"
	"time"

	"civic-reporter-be/config"

	"github.com/gin-gonic/gin"
)

// IssueRateLimiter caps how many issues one citizen can file per day.
func IssueRateLimiter(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		aadharVal, _ := c.Get("aadhar_number")
		aadharNumber, ok := aadharVal.(string)
		if !ok || aadharNumber == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "aadhar number missing from token"})
			c.Abort()
			return
		}

		ctx := config.Ctx
		queuePrefix := os.Getenv("REDIS_ISSUE_LIMIT_PREFIX")
		if queuePrefix == "" {
			queuePrefix = "issue-limit"
		}

		// Create individual key for each citizen
		userKey := queuePrefix + ":" + aadharNumber

		// Increment citizen's count with TTL
		count, err := config.RedisClient.Incr(ctx, userKey).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "redis error incrementing count"})
			c.Abort()
			return
		}

		// Set TTL only for the first increment (when count = 1)
		if count == 1 {
			err = config.RedisClient.Expire(ctx, userKey, 24*time.Hour).Err()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "redis error setting TTL"})
				c.Abort()
				return
			}
		}

		// Check if citizen exceeded limit
		if count > int64(limit) {
			retryAfter, _ := config.RedisClient.TTL(ctx, userKey).Result()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": retryAfter.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

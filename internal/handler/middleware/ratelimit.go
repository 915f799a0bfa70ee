package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"campfinder/internal/handler/httperr"
	"campfinder/internal/infra/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit throttles per client IP. A failing limiter backend lets the
// request through.
func RateLimit(limiter ratelimit.Limiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision, err := limiter.Allow(c.Request.Context(), scope+":"+c.ClientIP())
		if err != nil {
			slog.Warn("rate limiter unavailable", "scope", scope, "error", err)
			c.Next()
			return
		}

		if !decision.Allowed {
			seconds := int(math.Ceil(decision.RetryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			c.Header("Retry-After", strconv.Itoa(seconds))
			httperr.AbortWithError(c, http.StatusTooManyRequests, nil, "Too many requests, please try again later", nil)
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		c.Next()
	}
}

package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"task-nlp-service/pkg/response"
)

// RateLimit enforces a per-client-IP request budget. Limiter state lives in
// an expirable LRU so idle clients age out on their own.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := clientIP(c)

		limiter, ok := m.limiters.Get(ip)
		if !ok {
			burst := m.rateLimitPerMin / 10
			if burst < 1 {
				burst = 1
			}
			limiter = rate.NewLimiter(rate.Limit(float64(m.rateLimitPerMin)/60.0), burst)
			m.limiters.Add(ip, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", ip)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

// clientIP extracts the client address, preferring proxy headers.
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		return xri
	}
	ip, _, _ := net.SplitHostPort(c.Request.RemoteAddr)
	return ip
}

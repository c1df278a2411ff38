package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"todome/pkg/response"
)

// RateLimit throttles the parse-heavy endpoints per client IP. The UI calls
// parse on every keystroke, so the budget is generous but bounded.
func (m Middleware) RateLimit() gin.HandlerFunc {
	perMin := m.config.RateLimit.PerMin
	if perMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	burst := m.config.RateLimit.Burst
	if burst <= 0 {
		burst = perMin
	}

	var mu sync.Mutex
	limiters := make(map[string]*rate.Limiter)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		lim, ok := limiters[ip]
		if !ok {
			lim = rate.NewLimiter(rate.Limit(float64(perMin)/60.0), burst)
			limiters[ip] = lim
		}
		mu.Unlock()

		if !lim.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", ip)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

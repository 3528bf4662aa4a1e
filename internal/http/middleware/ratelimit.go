package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type clientWindow struct {
	start time.Time
	count int
}

// RateLimit blocks clients that send more than max requests per window.
// State is per-process; this server runs as a single instance.
func RateLimit(max int, window time.Duration) gin.HandlerFunc {
	var mu sync.Mutex
	clients := make(map[string]*clientWindow)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		cw, ok := clients[ip]
		if !ok || now.Sub(cw.start) > window {
			clients[ip] = &clientWindow{start: now, count: 1}
			mu.Unlock()
			c.Next()
			return
		}
		cw.count++
		count := cw.count
		mu.Unlock()

		if count > max {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/sharedesk/internal/domain/dto"
)

type client struct {
	windowStart time.Time
	count       int
}

// RateLimiter is a fixed-window, per-client-IP request budget kept in memory.
// Each instance has its own budget, so routes can be limited independently.
//
// NOTE: state is per process; multi-instance deployments need a shared store.
type RateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*client
	limit     int
	window    time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*client),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// Allow records one request for key and reports whether it fits the budget.
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > l.window {
		for k, cl := range l.clients {
			if now.Sub(cl.windowStart) > l.window {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}

	cl, ok := l.clients[key]
	if !ok || now.Sub(cl.windowStart) > l.window {
		cl = &client{windowStart: now}
		l.clients[key] = cl
	}
	cl.count++
	return cl.count <= l.limit
}

// Handler returns the Gin middleware. Exceeding the budget yields
// 429 Too Many Requests with the standard error body.
func (l *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.Header("Retry-After", retryAfter(l.window))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("rate limit exceeded", nil))
			return
		}
		c.Next()
	}
}

func retryAfter(d time.Duration) string {
	secs := int(d.Seconds())
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

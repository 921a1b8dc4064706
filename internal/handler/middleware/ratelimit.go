package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"skipass-api/internal/handler/httperr"
	"skipass-api/internal/pkg/config"
	"skipass-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

var ErrRateLimited = errs.New("rate limit exceeded")

type userLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter throttles pass mutations per user. Idle entries are dropped
// after two cleanup intervals.
type RateLimiter struct {
	limit           rate.Limit
	burst           int
	cleanupInterval time.Duration

	mu       sync.Mutex
	limiters map[uuid.UUID]*userLimiter

	stopCh chan struct{}
	once   sync.Once
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		limit:           rate.Limit(cfg.PassRPS),
		burst:           cfg.PassBurst,
		cleanupInterval: cfg.CleanupInterval,
		limiters:        make(map[uuid.UUID]*userLimiter),
		stopCh:          make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stopCh) })
}

// PerUser must run after RequireAuth.
func (rl *RateLimiter) PerUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Authentication required", nil)
			return
		}

		if !rl.limiterFor(userID).Allow() {
			c.Header("Retry-After", strconv.Itoa(rl.retryAfterSeconds()))
			httperr.AbortWithError(c, http.StatusTooManyRequests, ErrRateLimited, "Too many requests, please retry later", nil)
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) limiterFor(userID uuid.UUID) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	ul, exists := rl.limiters[userID]
	if !exists {
		ul = &userLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[userID] = ul
	}
	ul.lastAccess = time.Now()
	return ul.limiter
}

func (rl *RateLimiter) size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

// seconds until one token is refilled
func (rl *RateLimiter) retryAfterSeconds() int {
	if rl.limit <= 0 {
		return 1
	}
	sec := int(math.Ceil(1.0 / float64(rl.limit)))
	if sec < 1 {
		sec = 1
	}
	return sec
}

func (rl *RateLimiter) cleanupLoop() {
	if rl.cleanupInterval <= 0 {
		return
	}
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup(time.Now())
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RateLimiter) cleanup(now time.Time) {
	ttl := rl.cleanupInterval * 2

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for userID, ul := range rl.limiters {
		if now.Sub(ul.lastAccess) > ttl {
			delete(rl.limiters, userID)
		}
	}
}

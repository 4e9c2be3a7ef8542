package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"genesis-backend-go/internal/models"
)

// RateLimiterConfig holds the per-user request rate settings.
type RateLimiterConfig struct {
	Rate            rate.Limit    // Sustained rate in requests per second
	Burst           int           // Burst size
	CleanupInterval time.Duration // How often idle entries are evicted
}

// DefaultRateLimiterConfig returns the default settings: 120 requests
// per minute per user with a matching burst.
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		Rate:            rate.Limit(120.0 / 60.0),
		Burst:           120,
		CleanupInterval: 5 * time.Minute,
	}
}

type userLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter applies a per-user token bucket keyed by the
// authenticated UID. It must run after the auth middleware so the UID
// is available in the Gin context.
type RateLimiter struct {
	config RateLimiterConfig
	logger *zap.Logger

	mu       sync.Mutex
	limiters map[string]*userLimiter

	stopCh chan struct{}
}

// NewRateLimiter creates a new RateLimiter and starts the background
// cleanup of idle entries.
func NewRateLimiter(config RateLimiterConfig, logger *zap.Logger) *RateLimiter {
	if logger == nil {
		logger = zap.NewNop()
	}
	rl := &RateLimiter{
		config:   config,
		logger:   logger,
		limiters: make(map[string]*userLimiter),
		stopCh:   make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

// Middleware returns the gin handler enforcing the limit.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewErrorResponse("authentication required"))
			return
		}

		if !rl.limiterFor(identity.UID).Allow() {
			rl.logger.Warn("Rate limit exceeded", zap.String("uid", identity.UID))
			c.Header("Retry-After", strconv.Itoa(rl.retryAfterSeconds()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				models.NewErrorResponse("Too many requests. Please try again later."))
			return
		}

		c.Next()
	}
}

// EntryCount reports how many user entries are currently tracked.
func (rl *RateLimiter) EntryCount() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

func (rl *RateLimiter) limiterFor(uid string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if ul, exists := rl.limiters[uid]; exists {
		ul.lastAccess = time.Now()
		return ul.limiter
	}

	limiter := rate.NewLimiter(rl.config.Rate, rl.config.Burst)
	rl.limiters[uid] = &userLimiter{limiter: limiter, lastAccess: time.Now()}
	return limiter
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup drops entries idle for more than twice the cleanup interval.
func (rl *RateLimiter) cleanup() {
	ttl := rl.config.CleanupInterval * 2
	now := time.Now()

	rl.mu.Lock()
	for uid, ul := range rl.limiters {
		if now.Sub(ul.lastAccess) > ttl {
			delete(rl.limiters, uid)
		}
	}
	rl.mu.Unlock()
}

// retryAfterSeconds estimates how long until one token is refilled.
func (rl *RateLimiter) retryAfterSeconds() int {
	secs := int(math.Ceil(1.0 / float64(rl.config.Rate)))
	if secs < 1 {
		secs = 1
	}
	return secs
}

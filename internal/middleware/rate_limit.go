package middleware

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/grimoire-service/internal/domain/dto"
	"github.com/guttosm/grimoire-service/internal/i18n"
)

const (
	// defaultNumShards is the default number of shards for the rate limiter.
	defaultNumShards = 16
)

// visitor tracks rate limit state for a single identifier.
type visitor struct {
	tokens    int
	lastReset time.Time
}

// rateLimiterShard is a single shard of the rate limiter.
type rateLimiterShard struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

// RateLimiter is a fixed-window limiter sharded by caller identity to reduce lock contention.
type RateLimiter struct {
	shards    []*rateLimiterShard
	numShards int
	rate      int
	window    time.Duration
	now       func() time.Time
	stopOnce  sync.Once
	stopCh    chan struct{}
}

// NewRateLimiter creates a rate limiter allowing rate requests per window.
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	return NewShardedRateLimiter(rate, window, defaultNumShards)
}

// NewShardedRateLimiter creates a rate limiter with a custom shard count.
func NewShardedRateLimiter(rate int, window time.Duration, numShards int) *RateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}

	shards := make([]*rateLimiterShard, numShards)
	for i := range shards {
		shards[i] = &rateLimiterShard{
			visitors: make(map[string]*visitor),
		}
	}

	rl := &RateLimiter{
		shards:    shards,
		numShards: numShards,
		rate:      rate,
		window:    window,
		now:       time.Now,
		stopCh:    make(chan struct{}),
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) getShard(identifier string) *rateLimiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(identifier))
	return rl.shards[h.Sum32()%uint32(rl.numShards)]
}

func (rl *RateLimiter) checkRateLimit(identifier string) (allowed bool, remaining int) {
	shard := rl.getShard(identifier)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	v, exists := shard.visitors[identifier]
	now := rl.now()

	if !exists || now.Sub(v.lastReset) > rl.window {
		shard.visitors[identifier] = &visitor{tokens: rl.rate - 1, lastReset: now}
		return true, rl.rate - 1
	}

	if v.tokens <= 0 {
		return false, 0
	}

	v.tokens--
	return true, v.tokens
}

// RateLimit returns a middleware that limits requests per caller.
// Callers authenticated by APIKeyAuth are keyed by their key; everyone else by IP.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining := rl.checkRateLimit(callerIdentifier(c))

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			message := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewError(dto.ErrCodeRateLimit, message).WithRequestID(GetRequestID(c)))
			return
		}

		c.Next()
	}
}

func callerIdentifier(c *gin.Context) string {
	if id := GetAPIKeyID(c); id != "" {
		return "key:" + id
	}
	return "ip:" + c.ClientIP()
}

// cleanup periodically removes expired visitors from all shards.
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupExpired()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RateLimiter) cleanupExpired() {
	now := rl.now()
	threshold := rl.window * 2

	for _, shard := range rl.shards {
		shard.mu.Lock()
		for id, v := range shard.visitors {
			if now.Sub(v.lastReset) > threshold {
				delete(shard.visitors, id)
			}
		}
		shard.mu.Unlock()
	}
}

// Stop shuts down the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		close(rl.stopCh)
	})
}

// Done returns a channel that is closed once Stop has been called.
func (rl *RateLimiter) Done() <-chan struct{} {
	return rl.stopCh
}

// Stats returns the number of tracked visitors, in total and per shard.
func (rl *RateLimiter) Stats() (totalVisitors int, perShard []int) {
	perShard = make([]int, rl.numShards)
	for i, shard := range rl.shards {
		shard.mu.Lock()
		perShard[i] = len(shard.visitors)
		totalVisitors += perShard[i]
		shard.mu.Unlock()
	}
	return totalVisitors, perShard
}

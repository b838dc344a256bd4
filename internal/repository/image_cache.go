package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	imageKeyPrefix    = "cardimg:"
	negativeKeyPrefix = "cardimgneg:"
)

// ImageKey returns the Redis key holding image bytes for a card.
func ImageKey(cardID string) string { return imageKeyPrefix + cardID }

// NegativeImageKey returns the Redis key marking a card as missing upstream.
func NegativeImageKey(cardID string) string { return negativeKeyPrefix + cardID }

// RedisImageCache stores card images in Redis.
type RedisImageCache struct {
	client *redis.Client
}

// NewRedisImageCache creates an image cache on top of an existing client.
func NewRedisImageCache(client *redis.Client) *RedisImageCache {
	return &RedisImageCache{client: client}
}

// NewRedisClient opens a Redis client and verifies the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// Get returns cached bytes for cardID.
func (c *RedisImageCache) Get(ctx context.Context, cardID string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, ImageKey(cardID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores bytes for cardID with the given TTL.
func (c *RedisImageCache) Set(ctx context.Context, cardID string, data []byte, ttl time.Duration) error {
	return c.client.Set(ctx, ImageKey(cardID), data, ttl).Err()
}

// IsNegative reports whether cardID was recently found missing upstream.
func (c *RedisImageCache) IsNegative(ctx context.Context, cardID string) (bool, error) {
	n, err := c.client.Exists(ctx, NegativeImageKey(cardID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// SetNegative marks cardID as missing upstream for ttl.
func (c *RedisImageCache) SetNegative(ctx context.Context, cardID string, ttl time.Duration) error {
	return c.client.Set(ctx, NegativeImageKey(cardID), "1", ttl).Err()
}

// HealthCheck pings Redis.
func (c *RedisImageCache) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return c.client.Ping(ctx).Err()
}

// MemoryImageCache is an in-process image cache used when Redis is disabled.
// When full, expired entries are purged first, then the entry closest to expiry.
type MemoryImageCache struct {
	mu         sync.Mutex
	maxEntries int
	now        func() time.Time
	images     map[string]memoryImage
	negative   map[string]time.Time
}

type memoryImage struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryImageCache creates an in-memory image cache holding at most maxEntries images.
func NewMemoryImageCache(maxEntries int) *MemoryImageCache {
	if maxEntries <= 0 {
		maxEntries = 500
	}
	return &MemoryImageCache{
		maxEntries: maxEntries,
		now:        time.Now,
		images:     make(map[string]memoryImage),
		negative:   make(map[string]time.Time),
	}
}

// Get returns cached bytes for cardID.
func (c *MemoryImageCache) Get(_ context.Context, cardID string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	img, ok := c.images[cardID]
	if !ok {
		return nil, false, nil
	}
	if c.now().After(img.expiresAt) {
		delete(c.images, cardID)
		return nil, false, nil
	}
	return img.data, true, nil
}

// Set stores bytes for cardID with the given TTL.
func (c *MemoryImageCache) Set(_ context.Context, cardID string, data []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.images[cardID]; !exists && len(c.images) >= c.maxEntries {
		c.makeRoom()
	}
	c.images[cardID] = memoryImage{data: data, expiresAt: c.now().Add(ttl)}
	return nil
}

func (c *MemoryImageCache) makeRoom() {
	now := c.now()
	var soonestKey string
	var soonest time.Time
	for k, img := range c.images {
		if now.After(img.expiresAt) {
			delete(c.images, k)
			continue
		}
		if soonestKey == "" || img.expiresAt.Before(soonest) {
			soonestKey, soonest = k, img.expiresAt
		}
	}
	if len(c.images) >= c.maxEntries && soonestKey != "" {
		delete(c.images, soonestKey)
	}
}

// IsNegative reports whether cardID was recently found missing upstream.
func (c *MemoryImageCache) IsNegative(_ context.Context, cardID string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt, ok := c.negative[cardID]
	if !ok {
		return false, nil
	}
	if c.now().After(expiresAt) {
		delete(c.negative, cardID)
		return false, nil
	}
	return true, nil
}

// SetNegative marks cardID as missing upstream for ttl.
func (c *MemoryImageCache) SetNegative(_ context.Context, cardID string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.negative[cardID] = c.now().Add(ttl)
	return nil
}

// Len returns the number of cached images.
func (c *MemoryImageCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.images)
}

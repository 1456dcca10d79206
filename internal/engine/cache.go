package engine

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// Resolved market intelligence and tool outputs are cached in two tiers:
// an in-process map for the hot path and optional Redis so warm data
// survives restarts.
var analysisCache *tieredCache

var (
	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
)

type tieredCache struct {
	l1              sync.Map // key -> *cacheEntry
	rdb             *redis.Client
	ttl             time.Duration
	maxEntries      int
	cleanupInterval time.Duration
}

type cacheEntry struct {
	data      []byte
	expiresAt time.Time
}

// InitCache wires the cache tiers. Call after Init. An empty redisURL, a
// malformed one, or an unreachable server all leave the cache memory-only.
func InitCache(redisURL string, ttl time.Duration, maxEntries int, cleanupInterval time.Duration) {
	c := &tieredCache{ttl: ttl, maxEntries: maxEntries, cleanupInterval: cleanupInterval}
	c.rdb = connectRedis(redisURL)

	analysisCache = c
	slog.Info("cache: initialized",
		slog.Duration("ttl", ttl),
		slog.Bool("redis", c.rdb != nil),
		slog.Int("max_entries", maxEntries))

	go c.sweepLoop()
}

func connectRedis(redisURL string) *redis.Client {
	if redisURL == "" {
		return nil
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		slog.Warn("cache: invalid redis URL, L2 disabled", slog.Any("error", err))
		return nil
	}
	rdb := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Warn("cache: redis unreachable, L2 disabled", slog.Any("error", err))
		return nil
	}
	slog.Info("cache: L2 redis connected", slog.String("addr", opts.Addr))
	return rdb
}

// CacheKey builds a deterministic key from parts. Hashing keeps arbitrary
// role strings and CV text out of Redis key space.
func CacheKey(parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return fmt.Sprintf("sg:%x", hash[:12])
}

// CacheGet tries L1, then L2. An L2 hit refills L1 with a fresh TTL.
func CacheGet(ctx context.Context, key string) ([]byte, bool) {
	if analysisCache == nil {
		cacheMisses.Add(1)
		return nil, false
	}

	if val, ok := analysisCache.l1.Load(key); ok {
		entry := val.(*cacheEntry)
		if time.Now().Before(entry.expiresAt) {
			cacheHits.Add(1)
			return entry.data, true
		}
		analysisCache.l1.Delete(key)
	}

	if analysisCache.rdb != nil {
		if data, err := analysisCache.rdb.Get(ctx, key).Bytes(); err == nil {
			cacheHits.Add(1)
			analysisCache.store(key, data)
			return data, true
		}
	}

	cacheMisses.Add(1)
	return nil, false
}

// CacheSet writes to both tiers. L2 failures are non-fatal.
func CacheSet(ctx context.Context, key string, data []byte) {
	if analysisCache == nil {
		return
	}

	analysisCache.enforceLimit()
	analysisCache.store(key, data)

	if analysisCache.rdb != nil {
		if err := analysisCache.rdb.Set(ctx, key, data, analysisCache.ttl).Err(); err != nil {
			slog.Debug("cache: L2 set failed", slog.Any("error", err))
		}
	}
}

// CacheStats returns the hit/miss counters.
func CacheStats() (hits, misses int64) {
	return cacheHits.Load(), cacheMisses.Load()
}

func (c *tieredCache) store(key string, data []byte) {
	c.l1.Store(key, &cacheEntry{data: data, expiresAt: time.Now().Add(c.ttl)})
}

// enforceLimit keeps L1 under maxEntries: expired entries go first, then
// the entries closest to expiry (expiry order matches insertion order for
// a fixed TTL).
func (c *tieredCache) enforceLimit() {
	if c.maxEntries <= 0 {
		return
	}

	type live struct {
		key       any
		expiresAt time.Time
	}
	var entries []live

	now := time.Now()
	c.l1.Range(func(key, val any) bool {
		entry := val.(*cacheEntry)
		if now.After(entry.expiresAt) {
			c.l1.Delete(key)
			return true
		}
		entries = append(entries, live{key: key, expiresAt: entry.expiresAt})
		return true
	})

	if len(entries) < c.maxEntries {
		return
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].expiresAt.Before(entries[j].expiresAt)
	})
	for i := 0; i <= len(entries)-c.maxEntries; i++ {
		c.l1.Delete(entries[i].key)
	}
}

// sweepLoop drops expired L1 entries on a timer.
func (c *tieredCache) sweepLoop() {
	interval := c.cleanupInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		c.l1.Range(func(key, val any) bool {
			if entry := val.(*cacheEntry); now.After(entry.expiresAt) {
				c.l1.Delete(key)
			}
			return true
		})
	}
}

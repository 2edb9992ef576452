// Package cache keeps computed analysis payloads in Redis. Entries are keyed by
// user and UTC day, so a new day never serves yesterday's streaks. Each user
// also has a generation counter; a check-in bumps it and every entry written
// under an older generation reads as a miss.
package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"sobriety-backend/internal/analysis"
)

const (
	keyPrefix  = "analysis:"
	defaultTTL = time.Hour
	opTimeout  = 2 * time.Second
)

// NewClient builds a Redis client with short timeouts. It does not dial.
func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  opTimeout,
		WriteTimeout: opTimeout,
	})
}

// AnalysisCache is safe to use as a nil pointer; every method is then a no-op.
type AnalysisCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func New(rdb *redis.Client, ttl time.Duration, log *zap.Logger) *AnalysisCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &AnalysisCache{rdb: rdb, ttl: ttl, log: log}
}

func Key(userID, day string) string {
	return keyPrefix + userID + ":" + day
}

// GenKey holds the user's generation counter.
func GenKey(userID string) string {
	return keyPrefix + userID + ":gen"
}

type entry struct {
	Gen    int64           `json:"gen"`
	Result analysis.Result `json:"result"`
}

func (c *AnalysisCache) enabled() bool {
	return c != nil && c.rdb != nil
}

// Get returns a cached result and the user's current generation, which the
// caller hands back to Set. Any Redis failure reads as a miss.
func (c *AnalysisCache) Get(ctx context.Context, userID, day string) (*analysis.Result, int64, bool) {
	if !c.enabled() {
		return nil, 0, false
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	vals, err := c.rdb.MGet(ctx, GenKey(userID), Key(userID, day)).Result()
	if err != nil {
		c.log.Debug("cache get failed", zap.String("user_id", userID), zap.Error(err))
		return nil, 0, false
	}
	var gen int64
	if s, ok := vals[0].(string); ok {
		if gen, err = strconv.ParseInt(s, 10, 64); err != nil {
			c.log.Warn("cache generation corrupt", zap.String("user_id", userID), zap.Error(err))
			return nil, 0, false
		}
	}
	raw, ok := vals[1].(string)
	if !ok {
		return nil, gen, false
	}
	var e entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		c.log.Warn("cache entry corrupt", zap.String("user_id", userID), zap.Error(err))
		return nil, gen, false
	}
	if e.Gen != gen {
		return nil, gen, false
	}
	return &e.Result, gen, true
}

// Set stores res under gen, the generation Get reported before the result was
// computed. If a check-in bumped the generation meanwhile, the entry is never
// served.
func (c *AnalysisCache) Set(ctx context.Context, userID, day string, gen int64, res analysis.Result) {
	if !c.enabled() {
		return
	}
	b, err := json.Marshal(entry{Gen: gen, Result: res})
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// the counter must outlive every entry tagged with it
	_, err = c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, Key(userID, day), b, c.ttl)
		pipe.Expire(ctx, GenKey(userID), c.ttl)
		return nil
	})
	if err != nil {
		c.log.Warn("cache set failed", zap.String("user_id", userID), zap.Error(err))
	}
}

// Invalidate bumps the user's generation so every cached day becomes a miss.
func (c *AnalysisCache) Invalidate(ctx context.Context, userID string) {
	if !c.enabled() {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, GenKey(userID))
		pipe.Expire(ctx, GenKey(userID), c.ttl)
		return nil
	})
	if err != nil {
		c.log.Warn("cache invalidate failed", zap.String("user_id", userID), zap.Error(err))
	}
}

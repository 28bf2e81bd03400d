package sportbucket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rebld/rebldserver/internal/gymstats/sport"
	"github.com/rebld/rebldserver/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
)

// StatsCache keeps computed sport stats in redis, shared between the service instances.
type StatsCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewStatsCache(redisClient *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func statsKey(sp sport.Sport) string {
	return fmt.Sprintf("sportbucket:stats:%s", sp)
}

// Get returns nil stats and no error on a cache miss.
func (c *StatsCache) Get(ctx context.Context, sp sport.Sport) (_ *Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.sportbucket.stats.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	statsBytes, err := c.redisClient.Get(ctx, statsKey(sp)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats Stats
	if err := json.Unmarshal(statsBytes, &stats); err != nil {
		return nil, fmt.Errorf("unmarshal cached stats: %w", err)
	}
	return &stats, nil
}

func (c *StatsCache) Set(ctx context.Context, stats *Stats) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.sportbucket.stats.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	statsBytes, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	return c.redisClient.Set(ctx, statsKey(stats.Sport), statsBytes, c.ttl).Err()
}

func (c *StatsCache) Invalidate(ctx context.Context, sp sport.Sport) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.sportbucket.stats.invalidate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return c.redisClient.Del(ctx, statsKey(sp)).Err()
}

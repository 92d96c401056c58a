package content

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/solution-quest/internal/errors"
	redisclient "github.com/KirkDiggler/solution-quest/internal/redis"
)

const (
	contentKeyPrefix = "quest:content:"

	// DefaultCacheTTL is used when RedisCacheConfig.TTL is zero
	DefaultCacheTTL = time.Hour
)

// RowCache is a second cache tier for raw dataset rows shared between processes
type RowCache interface {
	// Get returns the cached rows and whether they were present
	Get(ctx context.Context, dataset string) ([][]string, bool, error)
	Set(ctx context.Context, dataset string, rows [][]string) error
}

// RedisCache stores dataset rows as JSON under quest:content:<dataset>
type RedisCache struct {
	client redisclient.Client
	ttl    time.Duration
}

// RedisCacheConfig contains configuration for the Redis row cache
type RedisCacheConfig struct {
	Client redisclient.Client
	TTL    time.Duration
}

// Validate validates the RedisCacheConfig
func (cfg *RedisCacheConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

// NewRedisCache creates a Redis-backed row cache
func NewRedisCache(cfg *RedisCacheConfig) (*RedisCache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}

	return &RedisCache{client: cfg.Client, ttl: ttl}, nil
}

// Get reads a dataset's rows
func (c *RedisCache) Get(ctx context.Context, dataset string) ([][]string, bool, error) {
	result, err := c.client.Get(ctx, contentKeyPrefix+dataset).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read cached rows").
			WithMeta("dataset", dataset)
	}

	var rows [][]string
	if err := json.Unmarshal([]byte(result), &rows); err != nil {
		return nil, false, errors.Wrapf(err, "failed to unmarshal cached rows for %s", dataset)
	}

	return rows, true, nil
}

// Set writes a dataset's rows with the configured TTL
func (c *RedisCache) Set(ctx context.Context, dataset string, rows [][]string) error {
	data, err := json.Marshal(rows)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal rows for %s", dataset)
	}

	if err := c.client.Set(ctx, contentKeyPrefix+dataset, data, c.ttl).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to cache rows").
			WithMeta("dataset", dataset)
	}

	return nil
}

// CheckOutput lists the cached datasets that can no longer be decoded
type CheckOutput struct {
	Checked int
	// Corrupt holds dataset names whose cached value is not a row table or
	// whose name is not a known dataset
	Corrupt []string
}

// Check scans every cached dataset and reports the corrupt ones
func (c *RedisCache) Check(ctx context.Context) (*CheckOutput, error) {
	out := &CheckOutput{}

	iter := c.client.Scan(ctx, 0, contentKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		dataset := strings.TrimPrefix(key, contentKeyPrefix)
		out.Checked++

		if !slices.Contains(AllDatasets(), dataset) {
			out.Corrupt = append(out.Corrupt, dataset)
			continue
		}

		if _, _, err := c.Get(ctx, dataset); err != nil {
			if errors.IsUnavailable(err) {
				return nil, err
			}
			slog.Debug("Corrupt cached dataset", "dataset", dataset, "error", err)
			out.Corrupt = append(out.Corrupt, dataset)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to scan cached rows")
	}

	return out, nil
}

// Invalidate deletes the cached rows of the given datasets and returns how
// many keys were removed
func (c *RedisCache) Invalidate(ctx context.Context, datasets ...string) (int, error) {
	if len(datasets) == 0 {
		return 0, nil
	}

	keys := make([]string, len(datasets))
	for i, dataset := range datasets {
		keys[i] = contentKeyPrefix + dataset
	}

	n, err := c.client.Del(ctx, keys...).Result()
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete cached rows")
	}
	return int(n), nil
}

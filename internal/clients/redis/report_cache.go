package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/portside/vesselwatch-backend/internal/platform/envutil"
	"github.com/portside/vesselwatch-backend/internal/platform/logger"
)

const (
	ConflictReportKey    = "vesselwatch:report:conflicts"
	AggregationReportKey = "vesselwatch:report:aggregated"
)

// ReportCache stores the serialized analytics reports between requests.
// Entries carry no TTL; a stale conflict report is unacceptable, so every
// vessel or list mutation must call Invalidate instead.
type ReportCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, raw []byte) error
	Invalidate(ctx context.Context) error
	Close() error
}

type reportCache struct {
	log *logger.Logger
	rdb *goredis.Client
}

// NewReportCache connects to REDIS_ADDR. An empty address is not an error:
// the caller is expected to treat a nil cache as disabled and recompute per
// request.
func NewReportCache(log *logger.Logger) (ReportCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(envutil.String("REDIS_ADDR", ""))
	if addr == "" {
		return nil, nil
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &reportCache{
		log: log.With("service", "RedisReportCache"),
		rdb: rdb,
	}, nil
}

func (c *reportCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c == nil || c.rdb == nil {
		return nil, false, nil
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return raw, true, nil
}

func (c *reportCache) Set(ctx context.Context, key string, raw []byte) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	if err := c.rdb.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *reportCache) Invalidate(ctx context.Context) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	if err := c.rdb.Del(ctx, ConflictReportKey, AggregationReportKey).Err(); err != nil {
		return fmt.Errorf("redis del reports: %w", err)
	}
	return nil
}

func (c *reportCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

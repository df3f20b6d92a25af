package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/k12345663/Shop-Mauli/internal/config"
)

const (
	reportKeyFmt = "report:month:%s"
	reportTTL    = 5 * time.Minute
)

// Cache holds the Redis client. A nil client degrades gracefully: every
// method becomes a no-op miss, so the app runs fine without Redis.
type Cache struct {
	client *redis.Client
}

// New connects to Redis if configured. An empty host or a failed ping
// returns a disabled cache rather than an error.
func New(cfg *config.Config) *Cache {
	if cfg.Redis.Host == "" {
		return &Cache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return &Cache{}
	}

	return &Cache{client: client}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// GetMonthReport returns the cached reconciliation JSON for a period label.
func (c *Cache) GetMonthReport(ctx context.Context, periodMonth string) ([]byte, bool) {
	if !c.Enabled() {
		return nil, false
	}
	data, err := c.client.Get(ctx, fmt.Sprintf(reportKeyFmt, periodMonth)).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func (c *Cache) SetMonthReport(ctx context.Context, periodMonth string, data []byte) {
	if !c.Enabled() {
		return
	}
	c.client.Set(ctx, fmt.Sprintf(reportKeyFmt, periodMonth), data, reportTTL)
}

// InvalidateMonthReports drops cached reports for the given period labels.
// Payment writes call this so a stale "fully paid" month never blocks or
// permits a collection incorrectly for longer than one request.
func (c *Cache) InvalidateMonthReports(ctx context.Context, periodMonths ...string) {
	if !c.Enabled() || len(periodMonths) == 0 {
		return
	}
	keys := make([]string, len(periodMonths))
	for i, m := range periodMonths {
		keys[i] = fmt.Sprintf(reportKeyFmt, m)
	}
	c.client.Del(ctx, keys...)
}

func (c *Cache) Close() {
	if c.Enabled() {
		c.client.Close()
	}
}

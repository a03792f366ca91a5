package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nywele/salon-api/internal/application/service"
	"github.com/redis/go-redis/v9"
)

const defaultReportTTL = 5 * time.Minute

// RedisReportCache stores serialized staff reports in Redis under
// report:staff:<id>:<from>:<to>. Reports for the same staff member and
// range share one key, so a re-request inside the TTL returns the
// identical payload without touching the database.
type RedisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisReportCache(client *redis.Client, ttl time.Duration) *RedisReportCache {
	if ttl <= 0 {
		ttl = defaultReportTTL
	}
	return &RedisReportCache{client: client, ttl: ttl}
}

func reportKey(staffID uuid.UUID, from, to time.Time) string {
	return fmt.Sprintf("report:staff:%s:%s:%s", staffID, from.Format("2006-01-02"), to.Format("2006-01-02"))
}

// Get returns the cached report, or (nil, nil) on a miss.
func (c *RedisReportCache) Get(ctx context.Context, staffID uuid.UUID, from, to time.Time) (*service.StaffReport, error) {
	payload, err := c.client.Get(ctx, reportKey(staffID, from, to)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var report service.StaffReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *RedisReportCache) Set(ctx context.Context, staffID uuid.UUID, from, to time.Time, report *service.StaffReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, reportKey(staffID, from, to), payload, c.ttl).Err()
}

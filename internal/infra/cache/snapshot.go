package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"radstation/internal/domain/rental"
	"radstation/internal/infra"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "radstation:snapshot"

type SnapshotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSnapshotCache(rdb *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{rdb: rdb, ttl: ttl}
}

func snapshotKey(r rental.DateRange) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, r.Von(), r.Bis())
}

// Get returns KindNotFound on a miss.
func (c *SnapshotCache) Get(ctx context.Context, r rental.DateRange) (map[string]rental.SnapshotRecord, error) {
	raw, err := c.rdb.Get(ctx, snapshotKey(r)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, infra.WrapRepoErr("snapshot not cached", err, infra.KindNotFound)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read snapshot cache", err, infra.KindCacheFailure)
	}

	var records map[string]rental.SnapshotRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, infra.WrapRepoErr("corrupt snapshot cache entry", err, infra.KindInvalidPayload)
	}
	return records, nil
}

func (c *SnapshotCache) Set(ctx context.Context, r rental.DateRange, records map[string]rental.SnapshotRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return infra.WrapRepoErr("failed to encode snapshot", err, infra.KindInvalidPayload)
	}
	if err := c.rdb.Set(ctx, snapshotKey(r), raw, c.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to write snapshot cache", err, infra.KindCacheFailure)
	}
	return nil
}

func (c *SnapshotCache) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return infra.WrapRepoErr("redis ping failed", err, infra.KindCacheFailure)
	}
	return nil
}

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/salonbook/salon-api/internal/schedule"
)

// SlotCache keeps resolved availability lists in redis for a short TTL
// so the public endpoint survives bursts without hammering postgres.
// A nil client (redis not configured) turns every call into a no-op.
type SlotCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zerolog.Logger
}

func NewSlotCache(rdb *redis.Client, ttl time.Duration, logger *zerolog.Logger) *SlotCache {
	return &SlotCache{rdb: rdb, ttl: ttl, logger: logger}
}

func (c *SlotCache) enabled() bool {
	return c != nil && c.rdb != nil && c.ttl > 0
}

// Key layout: slots:<barberID>:<date>:<sorted service ids>. Service ids
// participate because the total duration changes which slots fit.
func slotKey(barberID uint, date string, serviceIDs []uint) string {
	ids := make([]uint, len(serviceIDs))
	copy(ids, serviceIDs)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return fmt.Sprintf("slots:%d:%s:%s", barberID, date, strings.Join(parts, ","))
}

func (c *SlotCache) Get(ctx context.Context, barberID uint, date string, serviceIDs []uint) ([]schedule.Slot, bool) {
	if !c.enabled() {
		return nil, false
	}

	val, err := c.rdb.Get(ctx, slotKey(barberID, date, serviceIDs)).Result()
	if err != nil {
		return nil, false
	}

	var slots []schedule.Slot
	if err := json.Unmarshal([]byte(val), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *SlotCache) Set(ctx context.Context, barberID uint, date string, serviceIDs []uint, slots []schedule.Slot) {
	if !c.enabled() {
		return
	}

	data, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, slotKey(barberID, date, serviceIDs), data, c.ttl).Err(); err != nil && c.logger != nil {
		c.logger.Warn().Err(err).Msg("slot cache write failed")
	}
}

// Invalidate drops every cached list for one barber and date. Called
// after any booking write; service-id combinations make single-key
// deletes impractical, so it scans the prefix.
func (c *SlotCache) Invalidate(ctx context.Context, barberID uint, date string) {
	if !c.enabled() {
		return
	}

	pattern := fmt.Sprintf("slots:%d:%s:*", barberID, date)
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil && c.logger != nil {
			c.logger.Warn().Err(err).Str("key", iter.Val()).Msg("slot cache invalidation failed")
		}
	}
	if err := iter.Err(); err != nil && c.logger != nil {
		c.logger.Warn().Err(err).Msg("slot cache scan failed")
	}
}

package redisstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"skipass-api/internal/infra"
	"skipass-api/internal/usecase/commands"
	"skipass-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// Catalog cache outcomes reported to CacheMetrics.
const (
	CacheResultHit   = "hit"
	CacheResultMiss  = "miss"
	CacheResultError = "error"
)

type CacheMetrics interface {
	CatalogCache(result string)
}

var (
	_ queries.ResortReadStore = (*ResortCache)(nil)
	_ commands.ResortLookup   = (*ResortCache)(nil)
)

// ResortCache is a read-through cache in front of the catalog read store.
// Redis failures are logged and counted, then the inner store answers.
type ResortCache struct {
	inner   queries.ResortReadStore
	cache   Client
	ttl     time.Duration
	metrics CacheMetrics
}

func NewResortCache(inner queries.ResortReadStore, cache Client, ttl time.Duration, metrics CacheMetrics) *ResortCache {
	return &ResortCache{
		inner:   inner,
		cache:   cache,
		ttl:     ttl,
		metrics: metrics,
	}
}

func resortKey(id uuid.UUID) string {
	return "resort:" + id.String()
}

func resortListKey(search string) string {
	return "resorts:list:" + strings.ToLower(search)
}

func (c *ResortCache) List(ctx context.Context, search string) ([]*queries.ResortView, error) {
	key := resortListKey(search)

	var cached []*queries.ResortView
	if c.load(ctx, key, &cached) {
		return cached, nil
	}

	resorts, err := c.inner.List(ctx, search)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, resorts)
	return resorts, nil
}

func (c *ResortCache) FindByID(ctx context.Context, id uuid.UUID) (*queries.ResortView, error) {
	key := resortKey(id)

	var cached queries.ResortView
	if c.load(ctx, key, &cached) {
		return &cached, nil
	}

	r, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, r)
	return r, nil
}

// Invalidate drops the cached resorts and the unfiltered list. Filtered
// list pages age out with the TTL.
func (c *ResortCache) Invalidate(ctx context.Context, ids ...uuid.UUID) error {
	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, resortKey(id))
	}
	keys = append(keys, resortListKey(""))
	if err := c.cache.Del(ctx, keys...); err != nil {
		return infra.WrapRepoErr("failed to invalidate catalog cache", err, infra.KindCacheFailure)
	}
	return nil
}

func (c *ResortCache) load(ctx context.Context, key string, dst any) bool {
	val, err := c.cache.Get(ctx, key)
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal([]byte(val), dst); jsonErr != nil {
			slog.Warn("discarding undecodable catalog cache entry", "key", key, "error", jsonErr.Error())
			c.record(CacheResultError)
			return false
		}
		c.record(CacheResultHit)
		return true
	case IsMiss(err):
		c.record(CacheResultMiss)
	default:
		slog.Warn("catalog cache read failed, falling back to database", "key", key, "error", err.Error())
		c.record(CacheResultError)
	}
	return false
}

func (c *ResortCache) store(ctx context.Context, key string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		slog.Warn("failed to encode catalog cache entry", "key", key, "error", err.Error())
		return
	}
	if err := c.cache.Set(ctx, key, payload, c.ttl); err != nil {
		slog.Warn("catalog cache write failed", "key", key, "error", err.Error())
		c.record(CacheResultError)
	}
}

func (c *ResortCache) record(result string) {
	if c.metrics != nil {
		c.metrics.CatalogCache(result)
	}
}

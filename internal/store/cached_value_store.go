package store

import (
	"context"
	"fmt"
	"time"

	json "github.com/goccy/go-json"

	"drd/internal/providers"
)

// CachedValueStore keeps per-event month pages in the byte cache so a
// burst of card requests does not re-fetch the same pages. Empty pages
// are cached too, marked as an empty object.
type CachedValueStore struct {
	inner ValueStore
	cache providers.CacheProviderInterface
}

func NewCachedValueStore(inner *SnapshotStore, cache providers.CacheProviderInterface) ValueStore {
	return &CachedValueStore{inner: inner, cache: cache}
}

func pageKey(eventID string, year int, month time.Month) string {
	return fmt.Sprintf("chart:%s:%d:%d", eventID, year, int(month))
}

func (c *CachedValueStore) DeclaredValues(ctx context.Context, eventIDs []string, year int, month time.Month) (map[string]map[int]string, error) {
	result := make(map[string]map[int]string, len(eventIDs))
	var missing []string

	for _, id := range eventIDs {
		data, ok := c.cache.Get(pageKey(id, year, month))
		if !ok {
			missing = append(missing, id)
			continue
		}
		var page map[int]string
		if err := json.Unmarshal(data, &page); err != nil {
			missing = append(missing, id)
			continue
		}
		if len(page) > 0 {
			result[id] = page
		}
	}

	if len(missing) == 0 {
		return result, nil
	}

	fetched, err := c.inner.DeclaredValues(ctx, missing, year, month)
	if err != nil {
		return nil, err
	}

	for _, id := range missing {
		page := fetched[id]
		if page != nil {
			result[id] = page
		}
		if page == nil {
			page = map[int]string{}
		}
		if data, err := json.Marshal(page); err == nil {
			c.cache.Set(pageKey(id, year, month), data)
		}
	}

	return result, nil
}

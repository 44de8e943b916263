package handlers

import (
	"strings"
	"sync"
	"time"
)

// Small in-process cache for analytics payloads. Reports over the same
// window within the TTL reuse one computation.

type cacheEntry struct {
	value     any
	expiresAt time.Time
}

const cacheMaxEntries = 500

var (
	cacheMu       sync.Mutex
	analyticsByID = map[string]cacheEntry{}
)

func cacheKey(prefix string, restaurantID string, parts ...string) string {
	segments := make([]string, 0, 2+len(parts))
	segments = append(segments, prefix, restaurantID)
	segments = append(segments, parts...)
	return strings.Join(segments, "|")
}

func getCached(key string) (any, bool) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	entry, ok := analyticsByID[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(analyticsByID, key)
		return nil, false
	}
	return entry.value, true
}

func setCached(key string, value any, ttl time.Duration) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	analyticsByID[key] = cacheEntry{value: value, expiresAt: time.Now().Add(ttl)}
	if len(analyticsByID) > cacheMaxEntries {
		analyticsByID = map[string]cacheEntry{}
	}
}

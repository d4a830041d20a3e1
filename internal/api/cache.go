package api

import (
	"time"

	"golang.org/x/sync/singleflight"
)

// CacheBackend persists cached response bodies. Implemented by the sqlite
// store.
type CacheBackend interface {
	SaveResponse(key string, body []byte, fetchedAt time.Time) error
	Response(key string, maxAge time.Duration) ([]byte, bool, error)
	InvalidateResponses(prefix string) error
}

// responseCache is the (endpoint, params)-keyed read-through cache.
// Concurrent fetches of the same key collapse into one request.
type responseCache struct {
	backend CacheBackend
	maxAge  time.Duration
	group   singleflight.Group
}

func newResponseCache(backend CacheBackend, maxAge time.Duration) *responseCache {
	return &responseCache{backend: backend, maxAge: maxAge}
}

// through serves key from the backend when fresh, otherwise runs fetch once
// for all concurrent callers and stores the result. Backend failures fall
// back to a direct fetch; the cache is an optimization, never a gate.
func (rc *responseCache) through(key string, fetch func() ([]byte, error)) ([]byte, error) {
	if body, ok, err := rc.backend.Response(key, rc.maxAge); err == nil && ok {
		return body, nil
	}

	body, err, _ := rc.group.Do(key, func() (any, error) {
		data, err := fetch()
		if err != nil {
			return nil, err
		}
		_ = rc.backend.SaveResponse(key, data, time.Now())
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return body.([]byte), nil
}

// invalidate drops every cached entry under prefix.
func (rc *responseCache) invalidate(prefix string) {
	_ = rc.backend.InvalidateResponses(prefix)
}

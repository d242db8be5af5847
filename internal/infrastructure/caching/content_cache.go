// Package caching provides a TTL read-through cache for public content
// listings.
package caching

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Cache keys, one per public collection. Admin mutations invalidate the
// matching key so the next public read refetches from storage.
const (
	KeyProfile    = "profile"
	KeyEducation  = "education"
	KeyExperience = "experience"
	KeySkills     = "skills"
	KeyProjects   = "projects"
	KeyBlogs      = "blogs"
)

// ContentCache wraps an expiring in-memory cache. Stale reads are bounded
// by the TTL even if an invalidation is ever missed.
type ContentCache struct {
	store *cache.Cache
}

// NewContentCache creates a cache whose entries expire after ttl.
func NewContentCache(ttl time.Duration) *ContentCache {
	return &ContentCache{
		store: cache.New(ttl, 2*ttl),
	}
}

// Get returns the cached value for key, if present and unexpired.
func (cc *ContentCache) Get(key string) (any, bool) {
	return cc.store.Get(key)
}

// Set stores a value under key with the default TTL.
func (cc *ContentCache) Set(key string, value any) {
	cc.store.Set(key, value, cache.DefaultExpiration)
}

// Invalidate drops the given keys.
func (cc *ContentCache) Invalidate(keys ...string) {
	for _, key := range keys {
		cc.store.Delete(key)
	}
}

// GetOrLoad returns the cached value for key, loading and caching it on a
// miss.
func GetOrLoad[T any](cc *ContentCache, key string, load func() (T, error)) (T, error) {
	if cached, found := cc.Get(key); found {
		if value, ok := cached.(T); ok {
			return value, nil
		}
	}

	value, err := load()
	if err != nil {
		var zero T
		return zero, err
	}

	cc.Set(key, value)
	return value, nil
}

package profile

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/cageside/fightcred/internal/domain"
)

// profileCache provides an in-memory LRU cache for profile lookups with
// time-based expiration. Resolutions invalidate through the event bus, so
// the TTL only bounds staleness for profiles updated by another instance.
type profileCache struct {
	lru *expirable.LRU[uuid.UUID, *domain.UserProfile]
}

// newProfileCache creates a new profile cache with the specified size and TTL
func newProfileCache(size int, ttl time.Duration) *profileCache {
	return &profileCache{
		lru: expirable.NewLRU[uuid.UUID, *domain.UserProfile](size, nil, ttl),
	}
}

// Get retrieves a profile from the cache
func (c *profileCache) Get(userID uuid.UUID) (*domain.UserProfile, bool) {
	return c.lru.Get(userID)
}

// Set stores a profile in the cache
func (c *profileCache) Set(userID uuid.UUID, profile *domain.UserProfile) {
	c.lru.Add(userID, profile)
}

// Clear removes all entries from the cache. A resolution touches many
// profiles at once, so invalidation drops the whole cache rather than
// chasing individual users.
func (c *profileCache) Clear() {
	c.lru.Purge()
}

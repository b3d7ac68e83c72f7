package datasource

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/yourusername/pick-settler/internal/metrics"
	"github.com/yourusername/pick-settler/internal/models"
)

// ScoreCache keeps normalized final games per provider, sport and date so a
// re-grade or an overlapping run in the same process does not refetch them.
// A nil *ScoreCache is a valid, always-missing cache.
type ScoreCache struct {
	cache *gocache.Cache
}

// NewScoreCache creates a cache; ttl <= 0 disables caching and returns nil
func NewScoreCache(ttl time.Duration) *ScoreCache {
	if ttl <= 0 {
		return nil
	}
	return &ScoreCache{cache: gocache.New(ttl, 2*ttl)}
}

func scoreCacheKey(provider string, sport models.Sport, date time.Time) string {
	return provider + "|" + string(sport) + "|" + dateKey(date)
}

// Get returns the cached games for a date
func (c *ScoreCache) Get(provider string, sport models.Sport, date time.Time) ([]models.Game, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.cache.Get(scoreCacheKey(provider, sport, date))
	metrics.RecordScoreCacheLookup(ok)
	if !ok {
		return nil, false
	}
	return v.([]models.Game), true
}

// Set stores the games for a date
func (c *ScoreCache) Set(provider string, sport models.Sport, date time.Time, games []models.Game) {
	if c == nil {
		return
	}
	c.cache.SetDefault(scoreCacheKey(provider, sport, date), games)
}

// Flush drops every cached entry
func (c *ScoreCache) Flush() {
	if c == nil {
		return
	}
	c.cache.Flush()
}

// ItemCount returns the number of cached dates
func (c *ScoreCache) ItemCount() int {
	if c == nil {
		return 0
	}
	return c.cache.ItemCount()
}

// Package suggest owns the location suggestion cache: a flat list of
// "Locality, RegionCode" strings flattened from the IBGE hierarchy and
// matched by normalized substring containment.
package suggest

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/celsinho/rental-hub/internal/tools/caching"
	"github.com/celsinho/rental-hub/internal/tools/slowlog"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	// MaxResults caps a suggestion response.
	MaxResults = 8
	// MinQueryLength below which the cache is not even consulted.
	MinQueryLength = 2

	citiesCacheKey  = "suggestions:cities"
	populateLockKey = "suggestions:cities:populate-lock"
	citiesCacheTTL  = 24 * time.Hour
	populateLockTTL = time.Minute
)

type entry struct {
	display    string
	normalized string
}

// Cache is populated at most once in practice; repeat population calls are
// idempotent no-ops guarded by a non-empty check. Upstream failure leaves
// it empty and the next query silently retries.
type Cache struct {
	provider Provider
	cacher   *caching.Cacher
	redis    *redis.Client
	logger   *zerolog.Logger

	mutex   sync.RWMutex
	entries []entry
}

// New builds the cache. cacher and redisClient may be nil; they only add
// cross-restart persistence and a best-effort populate stampede guard.
func New(provider Provider, cacher *caching.Cacher, redisClient *redis.Client, logger *zerolog.Logger) *Cache {
	return &Cache{
		provider: provider,
		cacher:   cacher,
		redis:    redisClient,
		logger:   logger,
	}
}

// Query returns up to MaxResults entries whose normalized form contains
// the normalized query. Queries under MinQueryLength characters return an
// empty list without touching the cache or the upstream.
func (c *Cache) Query(ctx context.Context, query string) []string {
	matches := []string{}

	if len([]rune(query)) < MinQueryLength {
		return matches
	}

	c.EnsureLoaded(ctx)

	normalizedQuery := Normalize(query)

	c.mutex.RLock()
	defer c.mutex.RUnlock()

	for _, candidate := range c.entries {
		if strings.Contains(candidate.normalized, normalizedQuery) {
			matches = append(matches, candidate.display)
			if len(matches) == MaxResults {
				break
			}
		}
	}

	return matches
}

func (c *Cache) loaded() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.entries) > 0
}

func (c *Cache) setCities(cities []string) {
	entries := make([]entry, 0, len(cities))
	for _, city := range cities {
		entries = append(entries, entry{
			display:    city,
			normalized: Normalize(city),
		})
	}

	c.mutex.Lock()
	c.entries = entries
	c.mutex.Unlock()
}

// EnsureLoaded populates the cache if it is still empty. A population
// failure is logged, never surfaced.
func (c *Cache) EnsureLoaded(ctx context.Context) {
	if c.loaded() {
		return
	}

	var cities []string
	if c.cacher != nil && c.cacher.Fetch(ctx, citiesCacheKey, &cities) && len(cities) > 0 {
		c.setCities(cities)
		return
	}

	if c.redis != nil {
		acquired, err := c.redis.SetNX(ctx, populateLockKey, "", populateLockTTL).Result()
		if err == nil && !acquired {
			// Another instance is already hammering the upstream; this
			// query answers empty and the next one retries.
			return
		}
		if err == nil {
			defer c.redis.Del(context.Background(), populateLockKey)
		}
	}

	cities = c.fetchAll(ctx)
	if len(cities) == 0 {
		return
	}

	c.setCities(cities)

	if c.cacher != nil {
		_ = c.cacher.Store(ctx, citiesCacheKey, cities, citiesCacheTTL)
	}
}

// fetchAll flattens the two-level hierarchy: one request for the regions,
// then one request per region fanned out and joined. A failed region
// contributes zero entries instead of aborting the build.
func (c *Cache) fetchAll(ctx context.Context) []string {
	slowLog := slowlog.CreateLogger(c.logger)
	slowLog.Start("suggestions:populate")
	defer slowLog.Stop("suggestions:populate")

	states, err := c.provider.States(ctx)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Msg("Unable to fetch states, suggestion cache stays empty")
		return nil
	}

	citiesByState := make([][]string, len(states))

	var waitGroup sync.WaitGroup
	for i, state := range states {
		waitGroup.Add(1)
		go func(i int, state State) {
			defer waitGroup.Done()

			municipalities, err := c.provider.Municipalities(ctx, state.Code)
			if err != nil {
				c.logger.Warn().
					Err(err).
					Str("state", state.Code).
					Msg("Skipping state in suggestion cache")
				return
			}

			cities := make([]string, 0, len(municipalities))
			for _, municipality := range municipalities {
				cities = append(cities, municipality.Name+", "+state.Code)
			}
			citiesByState[i] = cities
		}(i, state)
	}
	waitGroup.Wait()

	flattened := []string{}
	for _, cities := range citiesByState {
		flattened = append(flattened, cities...)
	}

	c.logger.Info().
		Int("cities", len(flattened)).
		Msg("Suggestion cache populated")

	return flattened
}

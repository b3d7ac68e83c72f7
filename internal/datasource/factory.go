package datasource

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/pick-settler/internal/config"
	"github.com/yourusername/pick-settler/internal/metrics"
	"github.com/yourusername/pick-settler/internal/models"
)

// closedAfter is how long after midnight UTC a calendar date is treated as
// finished. Late games in western time zones end the next morning UTC.
const closedAfter = 36 * time.Hour

// Registry routes a sport to the ScoreProvider configured for it
type Registry struct {
	mu        sync.RWMutex
	providers map[models.Sport]ScoreProvider
	clients   []*RateLimitedHTTPClient
	cache     *ScoreCache
	logger    *logrus.Entry
	now       func() time.Time
}

// NewRegistry creates an empty registry; cache may be nil
func NewRegistry(logger *logrus.Logger, cache *ScoreCache) *Registry {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Registry{
		providers: make(map[models.Sport]ScoreProvider),
		cache:     cache,
		logger:    logger.WithField("component", "provider_registry"),
		now:       time.Now,
	}
}

// Register routes every sport the provider serves to it. A sport may only
// be served by one provider.
func (r *Registry) Register(p ScoreProvider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, sport := range p.Sports() {
		if existing, ok := r.providers[sport]; ok {
			return fmt.Errorf("sport %s already served by %s", sport, existing.Name())
		}
	}
	for _, sport := range p.Sports() {
		r.providers[sport] = p
	}
	r.logger.WithFields(logrus.Fields{"provider": p.Name(), "sports": p.Sports()}).Info("Registered score provider")
	return nil
}

// Provider returns the provider for a sport
func (r *Registry) Provider(sport models.Sport) (ScoreProvider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[sport]
	return p, ok
}

// Sports returns the supported sports in sorted order
func (r *Registry) Sports() []models.Sport {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sports := make([]models.Sport, 0, len(r.providers))
	for s := range r.providers {
		sports = append(sports, s)
	}
	sort.Slice(sports, func(i, j int) bool { return sports[i] < sports[j] })
	return sports
}

// FetchFinalGames returns final games for a sport on the given dates. An
// unsupported sport is not an error: it logs a warning and returns no games.
// Dates already in the score cache are not refetched. Only finished dates
// with at least one game are cached, so a date still in play is asked for
// again on the next call.
func (r *Registry) FetchFinalGames(ctx context.Context, sport models.Sport, dates []time.Time) ([]models.Game, error) {
	provider, ok := r.Provider(sport)
	if !ok {
		r.logger.WithField("sport", sport).Warn("No score provider for sport")
		return []models.Game{}, nil
	}

	var (
		games   []models.Game
		missing []time.Time
	)
	for _, day := range uniqueDates(dates) {
		if cached, hit := r.cache.Get(provider.Name(), sport, day); hit {
			games = append(games, cached...)
			continue
		}
		missing = append(missing, day)
	}
	if len(missing) == 0 {
		return games, nil
	}

	start := time.Now()
	fetched, err := provider.FetchFinalGames(ctx, sport, missing)
	elapsed := time.Since(start)

	status := "success"
	if err != nil {
		status = "failure"
	}
	metrics.RecordProviderFetch(provider.Name(), string(sport), status, len(fetched), elapsed.Seconds())
	r.logger.WithFields(logrus.Fields{
		"provider":   provider.Name(),
		"sport":      sport,
		"dates":      len(missing),
		"games":      len(fetched),
		"latency_ms": elapsed.Milliseconds(),
	}).Debug("Fetched final games")

	if err != nil {
		return games, err
	}

	byDate := make(map[string][]models.Game, len(missing))
	for _, g := range fetched {
		byDate[dateKey(g.Date)] = append(byDate[dateKey(g.Date)], g)
	}
	now := r.now()
	for _, day := range missing {
		if now.Sub(day) < closedAfter {
			continue
		}
		if dayGames := byDate[dateKey(day)]; len(dayGames) > 0 {
			r.cache.Set(provider.Name(), sport, day, dayGames)
		}
	}

	return append(games, fetched...), nil
}

// NewRegistryFromConfig builds the enabled providers and registers them
func NewRegistryFromConfig(cfg *config.Config, logger *logrus.Logger) (*Registry, error) {
	registry := NewRegistry(logger, NewScoreCache(cfg.Providers.CacheTTL()))
	timeout := cfg.Settlement.ProviderTimeout()

	builders := []struct {
		name  string
		pc    config.ProviderConfig
		build func(*RateLimitedHTTPClient, config.ProviderConfig) ScoreProvider
	}{
		{BasketballFeedName, cfg.Providers.Basketball, func(c *RateLimitedHTTPClient, pc config.ProviderConfig) ScoreProvider {
			return NewBasketballFeed(c, pc, timeout, logger)
		}},
		{GridironFeedName, cfg.Providers.Gridiron, func(c *RateLimitedHTTPClient, pc config.ProviderConfig) ScoreProvider {
			return NewGridironFeed(c, pc, timeout, logger)
		}},
		{FinalScoreFeedName, cfg.Providers.FinalScore, func(c *RateLimitedHTTPClient, pc config.ProviderConfig) ScoreProvider {
			return NewFinalScoreFeed(c, pc, timeout, logger)
		}},
	}

	for _, b := range builders {
		if !b.pc.Enabled {
			continue
		}
		client := NewRateLimitedHTTPClient(b.name, httpConfigFor(b.pc), logger)
		if err := registry.Register(b.build(client, b.pc)); err != nil {
			_ = client.Close()
			registry.Close()
			return nil, err
		}
		registry.clients = append(registry.clients, client)
	}
	return registry, nil
}

// Close releases the HTTP clients built by NewRegistryFromConfig
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.clients {
		_ = c.Close()
	}
	r.clients = nil
}

// httpConfigFor applies a provider's overrides on top of the defaults
func httpConfigFor(pc config.ProviderConfig) HTTPClientConfig {
	hc := DefaultHTTPClientConfig()
	if pc.RequestTimeoutSeconds > 0 {
		hc.Timeout = time.Duration(pc.RequestTimeoutSeconds) * time.Second
	}
	if pc.RateLimit > 0 {
		hc.RateLimit = pc.RateLimit
	}
	hc.MaxRetries = pc.MaxRetries
	return hc
}

package main

import (
	"context"
	"fmt"

	"github.com/yourusername/pick-settler/internal/cache"
	"github.com/yourusername/pick-settler/internal/database"
	"github.com/yourusername/pick-settler/internal/datasource"
	"github.com/yourusername/pick-settler/internal/metrics"
	"github.com/yourusername/pick-settler/internal/notify"
	"github.com/yourusername/pick-settler/internal/repository"
	"github.com/yourusername/pick-settler/internal/service"
)

// dependencies holds everything a command needs to settle picks
type dependencies struct {
	db          *database.DB
	picks       repository.PickRepository
	registry    *datasource.Registry
	notifier    *notify.Notifier
	invalidator cache.Invalidator
	settlement  *service.SettlementService
}

// setupDependencies wires the service. picks overrides the Postgres store
// when non-nil; dry runs pass an in-memory store and skip side effects.
func setupDependencies(ctx context.Context, picks repository.PickRepository) (*dependencies, error) {
	metrics.InitRegistry()
	deps := &dependencies{picks: picks}

	if deps.picks == nil {
		db, err := database.Initialize(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		deps.db = db

		repos, err := repository.NewRepositories(db)
		if err != nil {
			deps.Close()
			return nil, fmt.Errorf("failed to initialize repositories: %w", err)
		}
		deps.picks = repos.Pick
	}

	registry, err := datasource.NewRegistryFromConfig(cfg, logger)
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("failed to build score providers: %w", err)
	}
	deps.registry = registry

	opts := service.SettlementOptions{
		Lookback:       cfg.Settlement.Lookback(),
		NotifyOnGraded: cfg.Settlement.NotifyOnGraded,
	}

	if picks == nil {
		deps.notifier = notify.NewNotifierFromConfig(cfg.Notifications, logger)
		if deps.notifier.Enabled() {
			opts.Notifier = deps.notifier
		}

		invalidator, err := cache.New(ctx, cfg.Cache, logger)
		if err != nil {
			deps.Close()
			return nil, fmt.Errorf("failed to connect to read cache: %w", err)
		}
		deps.invalidator = invalidator
		opts.Invalidator = invalidator
	}

	deps.settlement = service.NewSettlementService(deps.picks, deps.registry, opts, logger)
	return deps, nil
}

// Close releases the provider clients, database pool and cache connection
func (d *dependencies) Close() {
	if d.registry != nil {
		d.registry.Close()
	}
	if d.invalidator != nil {
		_ = d.invalidator.Close()
	}
	if d.db != nil {
		d.db.Close()
	}
}

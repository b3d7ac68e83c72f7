package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/pick-settler/internal/health"
	"github.com/yourusername/pick-settler/internal/metrics"
	"github.com/yourusername/pick-settler/internal/scheduler"
)

const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run settlement on the configured schedule with health and metrics endpoints",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		deps, err := setupDependencies(ctx, nil)
		if err != nil {
			return err
		}
		defer deps.Close()

		sched := scheduler.NewScheduler(deps.settlement, logger)
		if err := sched.ScheduleSettlement(cfg.Settlement.Schedule); err != nil {
			return err
		}

		healthCfg := health.Config{
			ServiceName: cfg.App.Name,
			Version:     Version,
			Port:        cfg.Health.Port,
			Logger:      logger,
			DB:          deps.db,
			Runs:        sched,
		}
		if cfg.Metrics.Enabled {
			healthCfg.MetricsPath = cfg.Metrics.Path
			healthCfg.MetricsHandler = metrics.Handler()
		}
		srv := health.NewServer(healthCfg)
		if err := srv.Start(ctx); err != nil {
			return err
		}

		if cfg.Settlement.RunOnStart {
			sched.RunNow(ctx)
		}
		if err := sched.Start(); err != nil {
			return err
		}
		srv.SetReady(true)

		logger.WithFields(logrus.Fields{
			"environment": cfg.App.Environment,
			"schedule":    cfg.Settlement.Schedule,
			"sports":      deps.registry.Sports(),
		}).Info("Pick settler started")

		<-ctx.Done()
		srv.SetReady(false)
		logger.Info("Shutting down")

		stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return sched.Stop(stopCtx)
	},
}

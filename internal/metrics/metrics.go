// Package metrics provides centralized Prometheus metrics registry for the settlement engine.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	SettlementRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pick_settler",
		Name:      "settlement_runs_total",
		Help:      "Total number of settlement runs by status",
	}, []string{"status"})
	PicksSettledTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pick_settler",
		Name:      "picks_settled_total",
		Help:      "Total number of picks settled by sport and result",
	}, []string{"sport", "result"})
	PicksDeferredTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pick_settler",
		Name:      "picks_deferred_total",
		Help:      "Total number of picks left pending because no final score was available",
	}, []string{"sport"})
	PickErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pick_settler",
		Name:      "pick_errors_total",
		Help:      "Total number of picks that failed to grade or persist",
	}, []string{"sport", "stage"})
	CircuitBreakerTripsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pick_settler",
		Name:      "circuit_breaker_trips_total",
		Help:      "Total number of upstream circuit breaker trips",
	})
)

// Gauge metrics
var (
	LastRunNetPnL = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "pick_settler",
		Name:      "last_run_net_pnl",
		Help:      "Net profit and loss of picks graded in the last settlement run",
	})
	LastRunTimestamp = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "pick_settler",
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix time the last settlement run finished",
	})
	PendingPicks = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "pick_settler",
		Name:      "pending_picks",
		Help:      "Number of pending or live picks loaded by the last run",
	})
)

// Histogram metrics
var (
	SettlementRunDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "pick_settler",
		Name:      "settlement_run_duration_seconds",
		Help:      "Duration of settlement runs in seconds",
		Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		// Register counter metrics
		registry.MustRegister(SettlementRunsTotal)
		registry.MustRegister(PicksSettledTotal)
		registry.MustRegister(PicksDeferredTotal)
		registry.MustRegister(PickErrorsTotal)
		registry.MustRegister(CircuitBreakerTripsTotal)

		// Register gauge metrics
		registry.MustRegister(LastRunNetPnL)
		registry.MustRegister(LastRunTimestamp)
		registry.MustRegister(PendingPicks)

		// Register histogram metrics
		registry.MustRegister(SettlementRunDuration)

		// Register provider metrics
		registry.MustRegister(ProviderFetchesTotal)
		registry.MustRegister(ProviderGamesTotal)
		registry.MustRegister(ProviderFetchDuration)
		registry.MustRegister(ScoreCacheLookupsTotal)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordRun records a finished settlement run.
// status should be one of: "success", "failure"
func RecordRun(status string, durationSeconds float64, loaded int, netPnL float64, finishedUnix float64) {
	SettlementRunsTotal.WithLabelValues(status).Inc()
	SettlementRunDuration.Observe(durationSeconds)
	PendingPicks.Set(float64(loaded))
	if status == "success" {
		LastRunNetPnL.Set(netPnL)
	}
	LastRunTimestamp.Set(finishedUnix)
}

// RecordPickSettled records a settled pick.
func RecordPickSettled(sport, result string) {
	PicksSettledTotal.WithLabelValues(sport, result).Inc()
}

// RecordPickDeferred records a pick left pending.
func RecordPickDeferred(sport string) {
	PicksDeferredTotal.WithLabelValues(sport).Inc()
}

// RecordPickError records a per-pick failure.
// stage should be one of: "grade", "persist"
func RecordPickError(sport, stage string) {
	PickErrorsTotal.WithLabelValues(sport, stage).Inc()
}

// RecordCircuitBreakerTrip records a circuit breaker trip event.
func RecordCircuitBreakerTrip() {
	CircuitBreakerTripsTotal.Inc()
}

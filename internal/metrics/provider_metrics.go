package metrics

import "github.com/prometheus/client_golang/prometheus"

// Provider counter vectors
var (
	ProviderFetchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pick_settler",
		Name:      "provider_fetches_total",
		Help:      "Total number of upstream score fetches by provider, sport and status",
	}, []string{"provider", "sport", "status"})

	ProviderGamesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pick_settler",
		Name:      "provider_games_total",
		Help:      "Total number of final games normalized by provider and sport",
	}, []string{"provider", "sport"})

	ScoreCacheLookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pick_settler",
		Name:      "score_cache_lookups_total",
		Help:      "Score cache lookups by outcome",
	}, []string{"outcome"})
)

// Provider histogram vectors
var (
	ProviderFetchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pick_settler",
		Name:      "provider_fetch_duration_seconds",
		Help:      "Latency of a provider fetch for one sport and date set",
		Buckets:   prometheus.DefBuckets,
	}, []string{"provider"})
)

// RecordProviderFetch records one provider call.
// status should be one of: "success", "partial", "failure"
func RecordProviderFetch(provider, sport, status string, games int, durationSeconds float64) {
	ProviderFetchesTotal.WithLabelValues(provider, sport, status).Inc()
	ProviderGamesTotal.WithLabelValues(provider, sport).Add(float64(games))
	ProviderFetchDuration.WithLabelValues(provider).Observe(durationSeconds)
}

// RecordScoreCacheLookup records a cache hit or miss.
func RecordScoreCacheLookup(hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	ScoreCacheLookupsTotal.WithLabelValues(outcome).Inc()
}

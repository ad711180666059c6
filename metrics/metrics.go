package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamediary_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gamediary_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gamediary_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// RateLimiterRejections counts rejected requests due to rate limiting
	RateLimiterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamediary_rate_limiter_rejections_total",
			Help: "Total number of requests rejected by rate limiter",
		},
		[]string{"ip"},
	)

	// MemoryStats tracks memory usage stats
	MemoryStats = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gamediary_memory_stats_bytes",
			Help: "Memory statistics in bytes",
		},
		[]string{"type"},
	)

	// GoroutineCount tracks the number of goroutines
	GoroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gamediary_goroutine_count",
			Help: "Number of goroutines",
		},
	)

	// SessionCacheHits counts user session cache hits
	SessionCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gamediary_session_cache_hits_total",
			Help: "Total number of session cache hits",
		},
	)

	// SessionCacheMisses counts user session cache misses
	SessionCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gamediary_session_cache_misses_total",
			Help: "Total number of session cache misses",
		},
	)

	// GameCardsCreated counts created game cards
	GameCardsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gamediary_gamecards_created_total",
			Help: "Total number of game cards created",
		},
	)

	// PlayerRequestsCreated counts filed support requests
	PlayerRequestsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gamediary_player_requests_created_total",
			Help: "Total number of support requests filed",
		},
	)

	// GamesSynced counts games saved from the metadata API
	GamesSynced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gamediary_games_synced_total",
			Help: "Total number of games saved from the metadata API",
		},
	)
)

package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	QuestionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chronolens_questions_total",
			Help: "Total questions accepted by the pipeline",
		},
	)
	CatalogMissesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chronolens_catalog_misses_total",
			Help: "Questions with zero vector index hits",
		},
	)
	PriceCacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chronolens_price_cache_hits_total",
			Help: "Live price lookups served from cache",
		},
	)
	PriceCacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chronolens_price_cache_misses_total",
			Help: "Live price lookups that missed the cache",
		},
	)
	SearchCallsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chronolens_search_calls_total",
			Help: "Web search provider calls",
		},
	)
	SearchFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chronolens_search_failures_total",
			Help: "Web search provider calls that failed or timed out",
		},
	)
	LivePricesResolved = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chronolens_live_prices_resolved_total",
			Help: "Price candidates successfully extracted",
		},
	)
)

// Register installs the pipeline collectors on the default registry
func Register() {
	prometheus.MustRegister(
		QuestionsTotal,
		CatalogMissesTotal,
		PriceCacheHits,
		PriceCacheMisses,
		SearchCallsTotal,
		SearchFailuresTotal,
		LivePricesResolved,
	)
}

// Handler exposes the default registry for the /metrics route
func Handler() http.Handler {
	return promhttp.Handler()
}

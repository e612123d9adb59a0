package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search pipeline Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketdex",
			Name:      "searches_total",
			Help:      "Total number of market searches",
		},
		[]string{"mode"}, // "geo" / "plain"
	)

	GeoCandidates = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "marketdex",
			Name:      "geo_candidates",
			Help:      "Candidate rows fetched for the in-process geo pass",
			Buckets:   []float64{10, 50, 100, 250, 500, 1000, 2000, 5000},
		},
	)

	GeoFetchTruncatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "marketdex",
			Name:      "geo_fetch_truncated_total",
			Help:      "Geo searches where candidates hit the over-fetch cap",
		},
	)

	SlugCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketdex",
			Name:      "slug_cache_total",
			Help:      "Market-by-slug cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	StoreQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "marketdex",
			Name:      "store_query_duration_seconds",
			Help:      "Store query duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"op"},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(GeoCandidates)
	prometheus.MustRegister(GeoFetchTruncatedTotal)
	prometheus.MustRegister(SlugCacheTotal)
	prometheus.MustRegister(StoreQueryDuration)
	searchMetricsRegistered = true
}

package metrics

import "github.com/prometheus/client_golang/prometheus"

// Ranking Prometheus metrics.
var (
	RankRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "newsrank",
			Name:      "rank_requests_total",
			Help:      "Total number of rank requests",
		},
		[]string{"method", "status"},
	)

	RankDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "newsrank",
			Name:      "rank_duration_seconds",
			Help:      "Ranking duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method"},
	)

	RankArticles = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "newsrank",
			Name:      "rank_articles",
			Help:      "Number of articles per rank request",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	Capability = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "newsrank",
			Name:      "capability",
			Help:      "Optional scoring backends detected at startup (1 = available)",
		},
		[]string{"backend"}, // "statistical" / "model_backend" / "model"
	)
)

var rankMetricsRegistered bool

// RegisterRankingMetrics registers Prometheus ranking metrics. Must be called once from main.
func RegisterRankingMetrics() {
	if rankMetricsRegistered {
		return
	}
	prometheus.MustRegister(RankRequestsTotal)
	prometheus.MustRegister(RankDuration)
	prometheus.MustRegister(RankArticles)
	prometheus.MustRegister(Capability)
	rankMetricsRegistered = true
}

// SetCapability publishes one backend's availability.
func SetCapability(backend string, available bool) {
	v := 0.0
	if available {
		v = 1
	}
	Capability.WithLabelValues(backend).Set(v)
}

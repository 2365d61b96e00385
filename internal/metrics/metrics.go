package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	RecommendationsComputed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRecommendationsComputed,
			Help: HelpTextRecommendationsComputed,
		},
	)

	RecipesExcluded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecipesExcluded,
			Help: HelpTextRecipesExcluded,
		},
		[]string{LabelReason},
	)

	ErpRowsSynced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameErpRowsSynced,
			Help: HelpTextErpRowsSynced,
		},
		[]string{LabelDataType, LabelOutcome},
	)

	PriceReplacements = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePriceReplacements,
			Help: HelpTextPriceReplacements,
		},
	)
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values for PlanMutations
const (
	MutationAssign = "assign"
	MutationClear  = "clear"
	MutationCopy   = "copy"
	MutationMove   = "move"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)
)

// Business Metrics
var (
	PlanMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plan_mutations_total",
			Help: "Total number of week-plan mutations by kind",
		},
		[]string{"kind"},
	)

	WeekPlansCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "week_plans_created_total",
			Help: "Total number of week plans created lazily",
		},
	)

	ShoppingListsBuilt = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shopping_lists_built_total",
			Help: "Total number of shopping-list aggregations performed",
		},
	)

	MonthProjectionsBuilt = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "month_projections_built_total",
			Help: "Total number of month projections derived",
		},
	)
)

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

// Binder Metrics
var (
	SlotTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSlotTransitions,
			Help: HelpTextSlotTransitions,
		},
		[]string{LabelTransition},
	)

	SlotsSeeded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSlotsSeeded,
			Help: HelpTextSlotsSeeded,
		},
	)

	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameValidationFailures,
			Help: HelpTextValidationFailures,
		},
		[]string{LabelSchema},
	)
)

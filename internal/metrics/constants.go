package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "dexbinder_http_requests_total"
	MetricNameHTTPRequestDuration  = "dexbinder_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "dexbinder_http_requests_in_flight"
	MetricNameSlotTransitions      = "dexbinder_slot_transitions_total"
	MetricNameSlotsSeeded          = "dexbinder_slots_seeded_total"
	MetricNameValidationFailures   = "dexbinder_validation_failures_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests processed"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"
	HelpTextSlotTransitions      = "Total slot lifecycle transitions by kind"
	HelpTextSlotsSeeded          = "Total slots covered by bulk seed runs"
	HelpTextValidationFailures   = "Total request payloads rejected by validation, by schema"
)

// Label names
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelTransition = "transition"
	LabelSchema     = "schema"
)

// Transition label values
const (
	TransitionReplace = "replace"
	TransitionClear   = "clear"
)

// HTTPLatencyBuckets covers the expected latency range of single-row
// document reads and writes.
var HTTPLatencyBuckets = prometheus.DefBuckets

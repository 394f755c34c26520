package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameFightsResolved       = "fights_resolved_total"
	MetricNamePredictionsScored    = "predictions_scored_total"
	MetricNamePredictionFoldErrors = "prediction_fold_errors_total"
	MetricNamePollCycles           = "poll_cycles_total"
	MetricNamePollCycleErrors      = "poll_cycle_errors_total"
	MetricNameFeedRequests         = "feed_requests_total"
	MetricNameFeedRequestErrors    = "feed_request_errors_total"
	MetricNameNotificationsSent    = "notifications_sent_total"
	MetricNameNotificationErrors   = "notification_errors_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextFightsResolved       = "Total number of fights resolved"
	HelpTextPredictionsScored    = "Total number of predictions scored"
	HelpTextPredictionFoldErrors = "Total number of per-prediction resolution failures"
	HelpTextPollCycles           = "Total number of result poller cycles"
	HelpTextPollCycleErrors      = "Total number of result poller cycles with errors"
	HelpTextFeedRequests         = "Total number of requests to the results feed"
	HelpTextFeedRequestErrors    = "Total number of failed requests to the results feed"
	HelpTextNotificationsSent    = "Total number of resolution notifications sent"
	HelpTextNotificationErrors   = "Total number of failed resolution notifications"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelSource = "source"
)

// Values for the source label on fights_resolved_total
const (
	SourceAdmin  = "admin"
	SourcePoller = "poller"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

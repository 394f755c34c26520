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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	FightsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFightsResolved,
			Help: HelpTextFightsResolved,
		},
		[]string{LabelSource},
	)

	PredictionsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePredictionsScored,
			Help: HelpTextPredictionsScored,
		},
		[]string{LabelStatus},
	)

	PredictionFoldErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePredictionFoldErrors,
			Help: HelpTextPredictionFoldErrors,
		},
	)

	PollCycles = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePollCycles,
			Help: HelpTextPollCycles,
		},
	)

	PollCycleErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePollCycleErrors,
			Help: HelpTextPollCycleErrors,
		},
	)

	FeedRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFeedRequests,
			Help: HelpTextFeedRequests,
		},
	)

	FeedRequestErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFeedRequestErrors,
			Help: HelpTextFeedRequestErrors,
		},
	)

	NotificationsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameNotificationsSent,
			Help: HelpTextNotificationsSent,
		},
	)

	NotificationErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameNotificationErrors,
			Help: HelpTextNotificationErrors,
		},
	)
)

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cosmos"

// Collectors groups the Prometheus instruments exported by the service.
type Collectors struct {
	httpRequests         *prometheus.CounterVec
	httpDuration         *prometheus.HistogramVec
	llmTokens            *prometheus.CounterVec
	moderationRejections *prometheus.CounterVec
}

// NewCollectors registers every instrument on reg.
func NewCollectors(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		llmTokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_tokens_total",
			Help:      "Language model tokens by model and kind.",
		}, []string{"model", "kind"}),
		moderationRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moderation_rejections_total",
			Help:      "Rejected user content by reason.",
		}, []string{"reason"}),
	}
	reg.MustRegister(c.httpRequests, c.httpDuration, c.llmTokens, c.moderationRejections)
	return c
}

// ObserveHTTP records a finished request.
func (c *Collectors) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordTokens adds one completion's usage.
func (c *Collectors) RecordTokens(model string, usage TokenUsage) {
	if c == nil || usage.IsZero() {
		return
	}
	c.llmTokens.WithLabelValues(model, "prompt").Add(float64(usage.PromptTokens))
	c.llmTokens.WithLabelValues(model, "completion").Add(float64(usage.CompletionTokens))
}

// RecordRejection counts a moderation rejection.
func (c *Collectors) RecordRejection(reason string) {
	if c == nil {
		return
	}
	c.moderationRejections.WithLabelValues(reason).Inc()
}

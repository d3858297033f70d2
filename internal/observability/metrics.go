package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all custom metrics for TalentScout.
type Metrics struct {
	SessionsStarted   prometheus.Counter
	SessionsCompleted prometheus.Counter
	SessionsEnded     prometheus.Counter
	ActiveSessions    prometheus.Gauge

	MessagesProcessed *prometheus.CounterVec

	AIRequests        *prometheus.CounterVec
	AIRequestDuration *prometheus.HistogramVec

	Exports *prometheus.CounterVec

	RateLimitRejections prometheus.Counter
}

// NewMetrics registers TalentScout metrics on the given registerer. Pass
// prometheus.DefaultRegisterer in production; tests use a fresh registry to
// avoid duplicate registration across cases.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SessionsStarted: factory.NewCounter(prometheus.CounterOpts{
			Name: "talentscout_sessions_started_total",
			Help: "Number of interview sessions created.",
		}),
		SessionsCompleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "talentscout_sessions_completed_total",
			Help: "Number of interviews that reached the completed state.",
		}),
		SessionsEnded: factory.NewCounter(prometheus.CounterOpts{
			Name: "talentscout_sessions_ended_total",
			Help: "Number of interviews terminated early by the candidate.",
		}),
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "talentscout_active_sessions",
			Help: "Sessions currently held in memory.",
		}),
		MessagesProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "talentscout_messages_processed_total",
			Help: "Candidate messages processed, by flow state at receipt.",
		}, []string{"state"}),
		AIRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "talentscout_ai_requests_total",
			Help: "Upstream AI requests, by operation and outcome.",
		}, []string{"operation", "outcome"}),
		AIRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "talentscout_ai_request_duration_seconds",
			Help:    "Latency of upstream AI requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		Exports: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "talentscout_exports_total",
			Help: "Candidate data exports, by format.",
		}, []string{"format"}),
		RateLimitRejections: factory.NewCounter(prometheus.CounterOpts{
			Name: "talentscout_rate_limit_rejections_total",
			Help: "Requests rejected by the per-client rate limiter.",
		}),
	}
}

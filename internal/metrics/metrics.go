package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Submission outcomes recorded by contact_submissions_total.
const (
	OutcomeSent         = "sent"
	OutcomeInvalid      = "invalid"
	OutcomeMalformed    = "malformed"
	OutcomeUnconfigured = "unconfigured"
	OutcomeFailed       = "failed"
)

// Metrics groups the Prometheus instruments for the contact pipeline.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	ContactSubmissions *prometheus.CounterVec
	DispatchLatency    *prometheus.HistogramVec
}

// New registers all instruments with the given registerer. Tests pass a
// fresh prometheus.NewRegistry() to stay isolated.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ContactSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Contact form submissions by outcome.",
		}, []string{"outcome"}),

		DispatchLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "contact_dispatch_seconds",
			Help:    "Latency of the email provider call.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
	}

	reg.MustRegister(m.ContactSubmissions, m.DispatchLatency)
	return m
}

// Submission counts one finished submission. Safe on a nil receiver.
func (m *Metrics) Submission(outcome string) {
	if m == nil {
		return
	}
	m.ContactSubmissions.WithLabelValues(outcome).Inc()
}

// Dispatch records one provider call. Safe on a nil receiver.
func (m *Metrics) Dispatch(provider string, took time.Duration) {
	if m == nil {
		return
	}
	m.DispatchLatency.WithLabelValues(provider).Observe(took.Seconds())
}

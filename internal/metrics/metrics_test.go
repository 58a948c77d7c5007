package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Submission(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.Submission(OutcomeSent)
	m.Submission(OutcomeSent)
	m.Submission(OutcomeInvalid)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ContactSubmissions.WithLabelValues(OutcomeSent)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ContactSubmissions.WithLabelValues(OutcomeInvalid)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ContactSubmissions.WithLabelValues(OutcomeFailed)))
}

func TestMetrics_Dispatch(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Dispatch("resend", 120*time.Millisecond)

	n, err := testutil.GatherAndCount(reg, "contact_dispatch_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Submission(OutcomeSent)
		m.Dispatch("log", time.Second)
	})
}

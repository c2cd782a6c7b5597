package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRendersCounters(t *testing.T) {
	m := New()

	m.TasksPosted.Inc()
	m.TasksPosted.Inc()
	m.SessionsStarted.Inc()
	m.AcceptanceAttempts.WithLabelValues(ResultAccepted).Inc()
	m.AcceptanceAttempts.WithLabelValues(ResultConsentDeclined).Inc()

	lines, err := m.Snapshot()
	require.NoError(t, err)

	assert.Contains(t, lines, "sahaara_tasks_posted_total 2")
	assert.Contains(t, lines, "sahaara_sessions_started_total 1")
	assert.Contains(t, lines, `sahaara_acceptance_attempts_total{result="accepted"} 1`)
	assert.Contains(t, lines, `sahaara_acceptance_attempts_total{result="consent_declined"} 1`)
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := New()
	b := New()

	a.TasksPosted.Inc()

	lines, err := b.Snapshot()
	require.NoError(t, err)
	assert.NotContains(t, lines, "sahaara_tasks_posted_total 1")
}

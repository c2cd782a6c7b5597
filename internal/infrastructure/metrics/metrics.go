package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects operation counters on a private registry. There is no
// network surface to scrape in this application, so the registry is gathered
// in-process and rendered by the stats command.
type Metrics struct {
	registry *prometheus.Registry

	SessionsStarted    prometheus.Counter
	SessionsEnded      prometheus.Counter
	TasksPosted        prometheus.Counter
	AcceptanceAttempts *prometheus.CounterVec
}

// New creates the metrics collector with all counters registered.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		SessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sahaara",
			Name:      "sessions_started_total",
			Help:      "Number of login/register submissions that created a session.",
		}),
		SessionsEnded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sahaara",
			Name:      "sessions_ended_total",
			Help:      "Number of logouts.",
		}),
		TasksPosted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sahaara",
			Name:      "tasks_posted_total",
			Help:      "Number of tasks appended to the local store.",
		}),
		AcceptanceAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sahaara",
			Name:      "acceptance_attempts_total",
			Help:      "Task acceptance attempts by result.",
		}, []string{"result"}),
	}

	registry.MustRegister(
		m.SessionsStarted,
		m.SessionsEnded,
		m.TasksPosted,
		m.AcceptanceAttempts,
	)

	return m
}

// Acceptance result labels.
const (
	ResultAccepted         = "accepted"
	ResultConsentDeclined  = "consent_declined"
	ResultPermissionDenied = "permission_denied"
	ResultLocationError    = "location_error"
)

// Snapshot renders every counter as "name{labels} value" lines, sorted by
// name, for display.
func (m *Metrics) Snapshot() ([]string, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	var lines []string
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			name := family.GetName()
			if labels := metric.GetLabel(); len(labels) > 0 {
				pairs := make([]string, 0, len(labels))
				for _, label := range labels {
					pairs = append(pairs, fmt.Sprintf("%s=%q", label.GetName(), label.GetValue()))
				}
				name = fmt.Sprintf("%s{%s}", name, strings.Join(pairs, ","))
			}
			lines = append(lines, fmt.Sprintf("%s %v", name, metric.GetCounter().GetValue()))
		}
	}

	sort.Strings(lines)
	return lines, nil
}

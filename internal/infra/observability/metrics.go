package observability

import (
	"time"

	"github.com/boddenberg/startup-bot-go/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Command outcomes used as metric labels.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Metrics holds all Prometheus metrics for the bot.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so the /metrics endpoint can use it.
	Registry *prometheus.Registry

	commandDuration *prometheus.HistogramVec
	commandsTotal   *prometheus.CounterVec
	advisorRequests *prometheus.CounterVec
	repliesSent     *prometheus.CounterVec
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// bot metrics in it. Using a private registry avoids "duplicate
// collector" panics when NewMetrics is called more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		commandDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "startupbot_command_duration_seconds",
				Help:    "Duration of command handling by command.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"command"},
		),
		commandsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "startupbot_commands_total",
				Help: "Total commands handled by command and outcome.",
			},
			[]string{"command", "outcome"},
		),
		advisorRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "startupbot_advisor_requests_total",
				Help: "Total AI advisor requests by result.",
			},
			[]string{"status"},
		),
		repliesSent: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "startupbot_replies_total",
				Help: "Total replies sent by kind.",
			},
			[]string{"kind"},
		),
	}
}

// RecordCommand records one handled command.
func (m *Metrics) RecordCommand(command, outcome string, d time.Duration) {
	m.commandDuration.WithLabelValues(command).Observe(d.Seconds())
	m.commandsTotal.WithLabelValues(command, outcome).Inc()
}

// IncrAdvisorRequest counts an AI advisor call by result
// (success, unconfigured, upstream_error, circuit_open, transport_error).
func (m *Metrics) IncrAdvisorRequest(status string) {
	m.advisorRequests.WithLabelValues(status).Inc()
}

// IncrReply counts a sent reply ("text" or "message").
func (m *Metrics) IncrReply(kind string) {
	m.repliesSent.WithLabelValues(kind).Inc()
}

// Snapshot returns cumulative command and advisor counters suitable for
// the GET /v1/stats endpoint.
func (m *Metrics) Snapshot() *domain.CommandStats {
	stats := &domain.CommandStats{
		Commands:        map[string]domain.CommandCount{},
		AdvisorRequests: map[string]int64{},
	}

	for _, metric := range gather(m.commandsTotal) {
		labels := labelMap(metric)
		cmd, outcome := labels["command"], labels["outcome"]
		v := int64(metric.GetCounter().GetValue())

		cc, ok := stats.Commands[cmd]
		if !ok {
			cc = domain.CommandCount{Outcomes: map[string]int64{}}
		}
		cc.Total += v
		cc.Outcomes[outcome] += v
		stats.Commands[cmd] = cc
	}

	for _, metric := range gather(m.advisorRequests) {
		stats.AdvisorRequests[labelMap(metric)["status"]] = int64(metric.GetCounter().GetValue())
	}

	return stats
}

// gather collects the current samples of a collector.
func gather(c prometheus.Collector) []*dto.Metric {
	ch := make(chan prometheus.Metric, 64)
	go func() {
		c.Collect(ch)
		close(ch)
	}()

	var out []*dto.Metric
	for metric := range ch {
		m := &dto.Metric{}
		if err := metric.Write(m); err != nil {
			continue
		}
		out = append(out, m)
	}
	return out
}

func labelMap(m *dto.Metric) map[string]string {
	out := make(map[string]string, len(m.GetLabel()))
	for _, lp := range m.GetLabel() {
		out[lp.GetName()] = lp.GetValue()
	}
	return out
}

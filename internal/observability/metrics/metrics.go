package metrics

import "github.com/prometheus/client_golang/prometheus"

// ToolMetrics exposes counters/histograms for tool dispatch and risk
// alerting. All methods are nil-safe so wiring metrics stays optional.
type ToolMetrics struct {
	callsTotal      *prometheus.CounterVec
	callDuration    *prometheus.HistogramVec
	riskAlertsTotal *prometheus.CounterVec
}

func NewToolMetrics(reg prometheus.Registerer) *ToolMetrics {
	m := &ToolMetrics{
		callsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "voicedesk",
			Subsystem: "tools",
			Name:      "calls_total",
			Help:      "Total tool calls by tool and outcome",
		}, []string{"tool", "status"}),
		callDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "voicedesk",
			Subsystem: "tools",
			Name:      "call_duration_seconds",
			Help:      "Latency of tool call handling",
			Buckets:   prometheus.DefBuckets,
		}, []string{"tool"}),
		riskAlertsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "voicedesk",
			Subsystem: "risk",
			Name:      "alerts_total",
			Help:      "High and crisis risk assessments logged",
		}, []string{"level"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.callsTotal, m.callDuration, m.riskAlertsTotal)
	return m
}

func (m *ToolMetrics) ObserveCall(tool, status string, seconds float64) {
	if m == nil {
		return
	}
	m.callsTotal.WithLabelValues(tool, status).Inc()
	m.callDuration.WithLabelValues(tool).Observe(seconds)
}

func (m *ToolMetrics) ObserveRiskAlert(level string) {
	if m == nil {
		return
	}
	m.riskAlertsTotal.WithLabelValues(level).Inc()
}

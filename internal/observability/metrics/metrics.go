package metrics

import "github.com/prometheus/client_golang/prometheus"

// AssistantMetrics exposes counters/histograms for chat and scheduling flows.
type AssistantMetrics struct {
	chatTurnsTotal    *prometheus.CounterVec
	schedulingTotal   *prometheus.CounterVec
	toolCallLatency   *prometheus.HistogramVec
	completionLatency prometheus.Histogram
}

func NewAssistantMetrics(reg prometheus.Registerer) *AssistantMetrics {
	m := &AssistantMetrics{
		chatTurnsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jewelrybox",
			Subsystem: "chat",
			Name:      "turns_total",
			Help:      "Total chat turns processed",
		}, []string{"channel", "status"}),
		schedulingTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jewelrybox",
			Subsystem: "scheduling",
			Name:      "attempts_total",
			Help:      "Total appointment scheduling attempts",
		}, []string{"calendar", "outcome"}),
		toolCallLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "jewelrybox",
			Subsystem: "ghl",
			Name:      "tool_call_latency_seconds",
			Help:      "Latency of GHL MCP tool invocations",
			Buckets:   prometheus.DefBuckets,
		}, []string{"tool"}),
		completionLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "jewelrybox",
			Subsystem: "chat",
			Name:      "completion_latency_seconds",
			Help:      "Latency of OpenAI completions",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.chatTurnsTotal, m.schedulingTotal, m.toolCallLatency, m.completionLatency)
	return m
}

func (m *AssistantMetrics) ObserveChatTurn(channel, status string) {
	if m == nil {
		return
	}
	m.chatTurnsTotal.WithLabelValues(channel, status).Inc()
}

func (m *AssistantMetrics) ObserveScheduling(calendar, outcome string) {
	if m == nil {
		return
	}
	m.schedulingTotal.WithLabelValues(calendar, outcome).Inc()
}

func (m *AssistantMetrics) ObserveToolCall(tool string, seconds float64) {
	if m == nil {
		return
	}
	m.toolCallLatency.WithLabelValues(tool).Observe(seconds)
}

func (m *AssistantMetrics) ObserveCompletion(seconds float64) {
	if m == nil {
		return
	}
	m.completionLatency.Observe(seconds)
}

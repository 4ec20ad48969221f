package metrics

import (
	"github.com/angelmondragon/shopassist-backend/pkg/enums"
	"github.com/prometheus/client_golang/prometheus"
)

// ChatbotMetrics counts resolved chatbot queries per intent.
type ChatbotMetrics struct {
	queries *prometheus.CounterVec
}

// NewChatbotMetrics registers the chatbot metrics on the provided registerer.
func NewChatbotMetrics(reg prometheus.Registerer) *ChatbotMetrics {
	if reg == nil {
		return &ChatbotMetrics{}
	}
	queries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chatbot_queries_total",
		Help: "Chatbot queries by resolved intent.",
	}, []string{"intent"})
	reg.MustRegister(queries)
	// every intent is exported from the start, including ones never hit
	for _, intent := range enums.ChatIntents() {
		queries.WithLabelValues(intent.String())
	}
	return &ChatbotMetrics{queries: queries}
}

// IncIntent counts one resolved query.
func (c *ChatbotMetrics) IncIntent(intent enums.ChatIntent) {
	if c == nil || c.queries == nil {
		return
	}
	label := "unknown"
	if intent.IsValid() {
		label = intent.String()
	}
	c.queries.WithLabelValues(label).Inc()
}

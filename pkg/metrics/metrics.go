package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP 请求延迟（秒）
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// LLM 调用延迟（毫秒）
	LLMCallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_call_latency_ms",
			Help:    "Upstream LLM call latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10), // 100ms to ~100s
		},
		[]string{"provider", "operation", "status"},
	)

	// 分类失败计数（失败时静默回退到 followup）
	ClassifyFailureCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "llm_classify_failures_total",
			Help: "Total number of classification calls that fell back to the default",
		},
	)

	// 生成邮件计数
	GenerationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_generation_count",
			Help: "Total number of email generations",
		},
		[]string{"assistant_type", "status"}, // status: success, failed, cancelled
	)

	// 邮件发送计数
	EmailSentCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_sent_count",
			Help: "Total number of emails persisted",
		},
		[]string{"status"}, // status: success, failed
	)

	// 流式 envelope 计数
	StreamEnvelopeCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stream_envelope_count",
			Help: "Total number of SSE envelopes written to clients",
		},
		[]string{"type"}, // type: classification, content, complete, error
	)
)

// RecordHTTPRequestDuration 记录 HTTP 请求延迟
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordLLMCallLatency 记录 LLM 调用延迟
func RecordLLMCallLatency(provider, operation, status string, duration time.Duration) {
	LLMCallLatency.WithLabelValues(provider, operation, status).Observe(float64(duration.Milliseconds()))
}

// IncrementGeneration 增加生成计数
func IncrementGeneration(assistantType, status string) {
	GenerationCount.WithLabelValues(assistantType, status).Inc()
}

// IncrementEmailSent 增加发送计数
func IncrementEmailSent(status string) {
	EmailSentCount.WithLabelValues(status).Inc()
}

// IncrementStreamEnvelope 增加 envelope 计数
func IncrementStreamEnvelope(envelopeType string) {
	StreamEnvelopeCount.WithLabelValues(envelopeType).Inc()
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	SnapshotLoads       *prometheus.CounterVec
	SnapshotRowsSkipped *prometheus.CounterVec
	RelayMessagesSent   *prometheus.CounterVec
}

// New регистрирует коллекторы в default-регистре
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		SnapshotLoads: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "property_snapshot_loads_total",
			Help:        "Total number of property snapshot loads from CSV",
			ConstLabels: constLabels,
		}, []string{"status"}),

		SnapshotRowsSkipped: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "property_snapshot_rows_skipped_total",
			Help:        "Total number of CSV rows skipped during ingestion",
			ConstLabels: constLabels,
		}, []string{"file"}),

		RelayMessagesSent: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "relay_messages_sent_total",
			Help:        "Total number of messages relayed to Telegram",
			ConstLabels: constLabels,
		}, []string{"kind", "status"}),
	}
}

// IncSnapshotLoad учитывает одну загрузку снимка из CSV
func (m *Metrics) IncSnapshotLoad(status string) {
	m.SnapshotLoads.WithLabelValues(status).Inc()
}

// IncRowsSkipped учитывает отброшенные при инжесте строки файла
func (m *Metrics) IncRowsSkipped(file string, n int) {
	m.SnapshotRowsSkipped.WithLabelValues(file).Add(float64(n))
}

// IncRelaySent учитывает одну попытку ретрансляции в Telegram
func (m *Metrics) IncRelaySent(kind, status string) {
	m.RelayMessagesSent.WithLabelValues(kind, status).Inc()
}

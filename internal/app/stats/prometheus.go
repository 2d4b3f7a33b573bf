package stats

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusCollector отдает те же замеры в Prometheus
type PrometheusCollector struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	factory := promauto.With(reg)
	return &PrometheusCollector{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "transferegov",
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by route",
			},
			[]string{"path"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "transferegov",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route",
				Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"path"},
		),
	}
}

func (p *PrometheusCollector) Record(path string, d time.Duration) {
	p.requests.WithLabelValues(path).Inc()
	p.duration.WithLabelValues(path).Observe(d.Seconds())
}

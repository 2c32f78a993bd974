package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Metrics клиентские метрики обращений к API маркетплейса
type Metrics struct {
	Registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	forcedLogouts   prometheus.Counter
	networkErrors   prometheus.Counter
}

// New создает набор метрик в собственном реестре
func New(serviceName string) *Metrics {
	reg := prometheus.NewRegistry()
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		Registry: reg,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "marketplace_client_requests_total",
			Help:        "Total number of API requests by method and status code",
			ConstLabels: constLabels,
		}, []string{"method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "marketplace_client_request_duration_seconds",
			Help:        "API request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method"}),
		forcedLogouts: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "marketplace_client_forced_logouts_total",
			Help:        "Sessions cleared because the API answered 401",
			ConstLabels: constLabels,
		}),
		networkErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "marketplace_client_network_errors_total",
			Help:        "Requests that failed before a response was received",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(m.requestsTotal, m.requestDuration, m.forcedLogouts, m.networkErrors)
	return m
}

// ObserveRequest учитывает завершенный запрос
func (m *Metrics) ObserveRequest(method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// IncForcedLogout учитывает принудительный выход по 401
func (m *Metrics) IncForcedLogout() {
	if m == nil {
		return
	}
	m.forcedLogouts.Inc()
}

// IncNetworkError учитывает сетевую ошибку
func (m *Metrics) IncNetworkError() {
	if m == nil {
		return
	}
	m.networkErrors.Inc()
}

// Push отправляет метрики в Pushgateway
// CLI живет недолго, поэтому метрики не собираются через /metrics, а отправляются при завершении
func (m *Metrics) Push(ctx context.Context, gatewayURL, job string) error {
	if m == nil || gatewayURL == "" {
		return nil
	}
	return push.New(gatewayURL, job).Gatherer(m.Registry).PushContext(ctx)
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "localxp"

type Metrics struct {
	CatalogSize         prometheus.Gauge
	CatalogRefreshTotal *prometheus.CounterVec
	ProviderFetchTotal  *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	BookingsTotal       *prometheus.CounterVec
}

// New registers the collectors on reg. Tests pass a fresh prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CatalogSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_size",
			Help:      "Number of experiences in the current catalog snapshot.",
		}),
		CatalogRefreshTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_refresh_total",
			Help:      "Catalog refresh attempts by result.",
		}, []string{"result"}),
		ProviderFetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_fetch_total",
			Help:      "Listing source fetches by source and result.",
		}, []string{"source", "result"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		BookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_total",
			Help:      "Simulated bookings by result.",
		}, []string{"result"}),
	}

	if reg != nil {
		reg.MustRegister(
			m.CatalogSize,
			m.CatalogRefreshTotal,
			m.ProviderFetchTotal,
			m.HTTPRequestDuration,
			m.BookingsTotal,
		)
	}
	return m
}

func (m *Metrics) ObserveRefresh(result string) {
	if m == nil {
		return
	}
	m.CatalogRefreshTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) SetCatalogSize(n int) {
	if m == nil {
		return
	}
	m.CatalogSize.Set(float64(n))
}

func (m *Metrics) ObserveProviderFetch(source, result string) {
	if m == nil {
		return
	}
	m.ProviderFetchTotal.WithLabelValues(source, result).Inc()
}

func (m *Metrics) ObserveBooking(result string) {
	if m == nil {
		return
	}
	m.BookingsTotal.WithLabelValues(result).Inc()
}

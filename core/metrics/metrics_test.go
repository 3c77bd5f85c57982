package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Observe(t *testing.T) {
	t.Parallel()

	m := New(prometheus.NewRegistry())

	m.SetCatalogSize(12)
	m.ObserveRefresh("success")
	m.ObserveRefresh("success")
	m.ObserveRefresh("rejected")
	m.ObserveProviderFetch("viator", "error")
	m.ObserveBooking("confirmed")

	if got := testutil.ToFloat64(m.CatalogSize); got != 12 {
		t.Fatalf("expected catalog size 12, got %v", got)
	}
	if got := testutil.ToFloat64(m.CatalogRefreshTotal.WithLabelValues("success")); got != 2 {
		t.Fatalf("expected 2 successful refreshes, got %v", got)
	}
	if got := testutil.ToFloat64(m.CatalogRefreshTotal.WithLabelValues("rejected")); got != 1 {
		t.Fatalf("expected 1 rejected refresh, got %v", got)
	}
	if got := testutil.ToFloat64(m.ProviderFetchTotal.WithLabelValues("viator", "error")); got != 1 {
		t.Fatalf("expected 1 viator error, got %v", got)
	}
	if got := testutil.ToFloat64(m.BookingsTotal.WithLabelValues("confirmed")); got != 1 {
		t.Fatalf("expected 1 confirmed booking, got %v", got)
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.SetCatalogSize(1)
	m.ObserveRefresh("success")
	m.ObserveProviderFetch("fever", "ok")
	m.ObserveBooking("declined")
}

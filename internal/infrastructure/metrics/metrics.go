package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	ResultValid     = "valid"
	ResultInvalid   = "invalid"
	ResultMatched   = "matched"
	ResultMissed    = "missed"
	ResultSuccess   = "success"
	ResultFailure   = "failure"
	ResultUnchanged = "unchanged"
)

var (
	Validations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hostname_validations_total",
		Help: "Total number of host validations grouped by result",
	}, []string{"result"})
	Parses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hostname_parses_total",
		Help: "Total number of host parses grouped by result",
	}, []string{"result"})
	CatalogLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hostname_catalog_lookups_total",
		Help: "Total number of catalog lookups grouped by result",
	}, []string{"result"})
	CatalogReloads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hostname_catalog_reloads_total",
		Help: "Total number of catalog reloads grouped by result",
	}, []string{"result"})
	CatalogEntries = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "hostname_catalog_entries",
		Help: "Number of domains currently held by the catalog",
	})
	// Keep method cardinality bounded: REST paths and gRPC full method names only.
	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hostname_request_duration_seconds",
		Help:    "Request latency grouped by transport and method",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
	}, []string{"transport", "method"})
)

var registry = prometheus.NewRegistry()

func init() {
	registry.MustRegister(Validations)
	registry.MustRegister(Parses)
	registry.MustRegister(CatalogLookups)
	registry.MustRegister(CatalogReloads)
	registry.MustRegister(CatalogEntries)
	registry.MustRegister(RequestDuration)
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

// Registry returns the registry holding the service metrics.
func Registry() *prometheus.Registry {
	return registry
}

// Handler returns an http.Handler exposing the service metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}

func ObserveValidation(valid bool) {
	Validations.WithLabelValues(outcome(valid, ResultValid, ResultInvalid)).Inc()
}

func ObserveParse(ok bool) {
	Parses.WithLabelValues(outcome(ok, ResultValid, ResultInvalid)).Inc()
}

func ObserveLookup(matched bool) {
	CatalogLookups.WithLabelValues(outcome(matched, ResultMatched, ResultMissed)).Inc()
}

// ObserveReload records a reload result (ResultSuccess, ResultUnchanged or
// ResultFailure). The entries gauge is left alone on failure.
func ObserveReload(result string, entries int) {
	CatalogReloads.WithLabelValues(result).Inc()
	if result != ResultFailure {
		CatalogEntries.Set(float64(entries))
	}
}

func outcome(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}

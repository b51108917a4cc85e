// Package metrics defines Prometheus metrics for the hostname service,
// covering validation and parse outcomes, catalog lookups and reloads,
// and request latency.
package metrics

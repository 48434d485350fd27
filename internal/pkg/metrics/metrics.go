// Package metrics exposes the service counters as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry groups the service metrics behind a dedicated Prometheus registry,
// keeping the default global registry untouched so tests can create isolated
// instances.
type Registry struct {
	reg *prometheus.Registry

	OrdersSubmitted     prometheus.Counter
	EventsPublished     prometheus.Counter
	OrdersProcessed     prometheus.Counter
	DuplicatesSkipped   prometheus.Counter
	MessagesDeadLetter  prometheus.Counter
	FulfillmentDuration prometheus.Histogram
}

// NewRegistry creates and registers all service metrics.
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	submitted := prometheus.NewCounter(prometheus.CounterOpts{Name: "ordertrack_orders_submitted_total"})
	published := prometheus.NewCounter(prometheus.CounterOpts{Name: "ordertrack_events_published_total"})
	processed := prometheus.NewCounter(prometheus.CounterOpts{Name: "ordertrack_orders_processed_total"})
	duplicates := prometheus.NewCounter(prometheus.CounterOpts{Name: "ordertrack_duplicates_skipped_total"})
	deadLettered := prometheus.NewCounter(prometheus.CounterOpts{Name: "ordertrack_messages_dead_lettered_total"})
	fulfillment := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ordertrack_fulfillment_duration_seconds",
		Buckets: prometheus.DefBuckets,
	})

	r.MustRegister(submitted, published, processed, duplicates, deadLettered, fulfillment)
	return &Registry{
		reg:                 r,
		OrdersSubmitted:     submitted,
		EventsPublished:     published,
		OrdersProcessed:     processed,
		DuplicatesSkipped:   duplicates,
		MessagesDeadLetter:  deadLettered,
		FulfillmentDuration: fulfillment,
	}
}

// Handler serves the registry in the Prometheus text exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

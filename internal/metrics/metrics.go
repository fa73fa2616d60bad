// Package metrics holds the Prometheus collectors of the contact server.
// Collectors live on a private registry so several servers (and tests) can
// coexist in one process.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics provides observability for the contact server: HTTP traffic and
// contact/image mutations.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	ContactsCreated prometheus.Counter
	ContactsUpdated prometheus.Counter
	ContactsDeleted prometheus.Counter
	ImagesUploaded  prometheus.Counter
}

// New creates a registry and registers every collector on it.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "phonebook_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "phonebook_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method and route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route"}),
		ContactsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "phonebook_contacts_created_total",
			Help: "Total number of contacts created",
		}),
		ContactsUpdated: factory.NewCounter(prometheus.CounterOpts{
			Name: "phonebook_contacts_updated_total",
			Help: "Total number of contacts updated",
		}),
		ContactsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "phonebook_contacts_deleted_total",
			Help: "Total number of contacts deleted",
		}),
		ImagesUploaded: factory.NewCounter(prometheus.CounterOpts{
			Name: "phonebook_images_uploaded_total",
			Help: "Total number of profile images uploaded",
		}),
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one served request.
// Call with time.Now() taken before the handler ran.
func (m *Metrics) ObserveRequest(method, route string, status int, start time.Time) {
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncrementContactsCreated() {
	m.ContactsCreated.Inc()
}

func (m *Metrics) IncrementContactsUpdated() {
	m.ContactsUpdated.Inc()
}

func (m *Metrics) IncrementContactsDeleted() {
	m.ContactsDeleted.Inc()
}

func (m *Metrics) IncrementImagesUploaded() {
	m.ImagesUploaded.Inc()
}

package server

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mergington/activities/internal/registry"
)

// metricsRegistry is the Prometheus registry for all activities metrics.
var metricsRegistry = prometheus.NewRegistry()

// metricsOnce ensures metrics are only initialized once.
var metricsOnce sync.Once

// metricsInstance is the singleton instance of server metrics.
var metricsInstance *Metrics

func init() {
	// Register standard Go metrics
	metricsRegistry.MustRegister(collectors.NewGoCollector())
	metricsRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

// Metrics holds all Prometheus metrics for the activities server.
type Metrics struct {
	SignupsTotal    prometheus.Counter
	SignupsRejected *prometheus.CounterVec // labels: reason
	Participants    *prometheus.GaugeVec   // labels: activity
	Activities      prometheus.Gauge
}

// initMetrics initializes all server metrics. Metrics are only registered
// once; subsequent calls return the same instance.
func initMetrics(reg prometheus.Registerer) *Metrics {
	metricsOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		metricsInstance = &Metrics{
			SignupsTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
				Name: "activities_signups_total",
				Help: "Total successful activity signups",
			}),

			SignupsRejected: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
				Name: "activities_signups_rejected_total",
				Help: "Total rejected activity signups by reason",
			}, []string{"reason"}),

			Participants: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
				Name: "activities_participants",
				Help: "Current roster size per activity",
			}, []string{"activity"}),

			Activities: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
				Name: "activities_offered",
				Help: "Number of activities in the registry",
			}),
		}
	})

	return metricsInstance
}

// seed sets the registry-derived gauges to the current state.
func (m *Metrics) seed(reg *registry.Registry) {
	activities := reg.List()
	m.Activities.Set(float64(len(activities)))
	for name, a := range activities {
		m.Participants.WithLabelValues(name).Set(float64(len(a.Participants)))
	}
}

// metricsHandler returns the HTTP handler for the /metrics endpoint.
func metricsHandler() http.Handler {
	return promhttp.HandlerFor(metricsRegistry, promhttp.HandlerOpts{})
}

package prometheus

import (
	"net/http"
	"strconv"

	"github.com/bnema/fifochat/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fifochat"

// Recorder counts server activity on its own registry, so several servers in
// one process (tests) never collide on metric names.
type Recorder struct {
	registry *prometheus.Registry

	requests   *prometheus.CounterVec
	deliveries *prometheus.CounterVec
	evictions  prometheus.Counter
	discarded  prometheus.Counter
	clients    prometheus.Gauge
}

var _ ports.ServerMetrics = (*Recorder)(nil)

func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Requests handled by the server, by kind and acknowledgement status.",
			},
			[]string{"kind", "status"},
		),
		deliveries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "deliveries_total",
				Help:      "Chat deliveries attempted to client channels.",
			},
			[]string{"ok"},
		),
		evictions: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "clients_evicted_total",
				Help:      "Clients dropped because their channel was unreachable.",
			},
		),
		discarded: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "records_discarded_total",
				Help:      "Malformed records read from the server channel.",
			},
		),
		clients: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "clients_connected",
				Help:      "Clients currently registered.",
			},
		),
	}
}

func (r *Recorder) RequestHandled(kind string, status string) {
	r.requests.WithLabelValues(kind, status).Inc()
}

func (r *Recorder) DeliveryAttempted(ok bool) {
	r.deliveries.WithLabelValues(strconv.FormatBool(ok)).Inc()
}

func (r *Recorder) ClientEvicted() {
	r.evictions.Inc()
}

func (r *Recorder) RecordDiscarded() {
	r.discarded.Inc()
}

func (r *Recorder) ClientsConnected(n int) {
	r.clients.Set(float64(n))
}

// Handler serves the recorder's registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Edit kinds recorded by RecordEdit.
const (
	KindComponent = "component"
	KindFloat     = "float"
	KindHex       = "hex"
	KindSpace     = "space"
	KindDrag      = "drag"
)

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithHistogramBuckets sets custom buckets for the handling latency histogram.
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.buckets = buckets
		}
	}
}

// WithRegistry sets the Prometheus registry metrics are registered on and
// served from.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(m *Manager) {
		if registry != nil {
			m.registry = registry
		}
	}
}

// Manager owns the sync server metrics.
type Manager struct {
	namespace string
	buckets   []float64
	registry  *prometheus.Registry

	edits           *prometheus.CounterVec
	fieldSyncs      *prometheus.CounterVec
	droppedMessages prometheus.Counter
	invalidMessages prometheus.Counter
	clients         prometheus.Gauge
	handleLatency   prometheus.Histogram
}

// NewManager creates a manager. Unless WithRegistry is given, metrics are
// registered on a fresh registry so Go runtime metrics are not exported.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "colorpick",
		buckets:   []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05},
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	auto := promauto.With(m.registry)

	m.edits = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "sync",
		Name:      "edits_total",
		Help:      "Input events applied to the shared color, by kind",
	}, []string{"kind"})

	m.fieldSyncs = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "sync",
		Name:      "field_syncs_total",
		Help:      "Field synchronizations, by whether the displayed text was overwritten or kept",
	}, []string{"result"})

	m.droppedMessages = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "sync",
		Name:      "dropped_messages_total",
		Help:      "Client messages dropped by the rate limiter",
	})

	m.invalidMessages = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "sync",
		Name:      "invalid_messages_total",
		Help:      "Client messages that could not be decoded or referenced unknown fields",
	})

	m.clients = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "sync",
		Name:      "clients",
		Help:      "Currently connected WebSocket clients",
	})

	m.handleLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "sync",
		Name:      "handle_duration_seconds",
		Help:      "Time to apply one input event and synchronize every client",
		Buckets:   m.buckets,
	})

	return m
}

// RecordEdit counts an applied input event.
func (m *Manager) RecordEdit(kind string) {
	m.edits.WithLabelValues(kind).Inc()
}

// RecordFieldSync counts one field synchronization.
func (m *Manager) RecordFieldSync(overwritten bool) {
	result := "kept"
	if overwritten {
		result = "overwritten"
	}
	m.fieldSyncs.WithLabelValues(result).Inc()
}

// RecordDropped counts a message rejected by the rate limiter.
func (m *Manager) RecordDropped() {
	m.droppedMessages.Inc()
}

// RecordInvalid counts a malformed client message.
func (m *Manager) RecordInvalid() {
	m.invalidMessages.Inc()
}

// ClientConnected increments the connected clients gauge.
func (m *Manager) ClientConnected() {
	m.clients.Inc()
}

// ClientDisconnected decrements the connected clients gauge.
func (m *Manager) ClientDisconnected() {
	m.clients.Dec()
}

// ObserveHandle records how long handling one event took.
func (m *Manager) ObserveHandle(d time.Duration) {
	m.handleLatency.Observe(d.Seconds())
}

// Registry returns the registry metrics are registered on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus text format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

package observability

import (
	"time"

	"github.com/Wyydra/ya-relay/internal/core/port"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is safe to use on a nil receiver.
type Metrics struct {
	connectionsActive prometheus.Gauge
	connectionsTotal  prometheus.Counter
	events            *prometheus.CounterVec
	eventLatency      *prometheus.HistogramVec
	deliveriesDropped prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer, presence port.Presence) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		connectionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ya_connections_active",
			Help: "Current number of open websocket connections.",
		}),
		connectionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ya_connections_total",
			Help: "Total number of connections accepted since start.",
		}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ya_events_total",
			Help: "Inbound events grouped by name and outcome.",
		}, []string{"event", "outcome"}),
		eventLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ya_event_duration_seconds",
			Help:    "Time spent handling inbound events.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2},
		}, []string{"event"}),
		deliveriesDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ya_deliveries_dropped_total",
			Help: "Outbound events dropped because a connection was gone or too slow.",
		}),
	}

	reg.MustRegister(
		m.connectionsActive,
		m.connectionsTotal,
		m.events,
		m.eventLatency,
		m.deliveriesDropped,
	)
	if presence != nil {
		reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "ya_users_online",
			Help: "Users with at least one active connection.",
		}, func() float64 {
			return float64(presence.OnlineCount())
		}))
	}
	return m
}

func (m *Metrics) ConnectionOpened() {
	if m == nil {
		return
	}
	m.connectionsActive.Inc()
	m.connectionsTotal.Inc()
}

func (m *Metrics) ConnectionClosed() {
	if m == nil {
		return
	}
	m.connectionsActive.Dec()
}

// ObserveEvent records one handled inbound event. outcome is "ok" or an error class.
func (m *Metrics) ObserveEvent(event, outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(event, outcome).Inc()
	m.eventLatency.WithLabelValues(event).Observe(took.Seconds())
}

func (m *Metrics) DeliveryDropped() {
	if m == nil {
		return
	}
	m.deliveriesDropped.Inc()
}

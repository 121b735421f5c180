package websocket

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts stream activity. A nil *Metrics records nothing.
type Metrics struct {
	connects      *prometheus.CounterVec
	frames        *prometheus.CounterVec
	events        *prometheus.CounterVec
	errors        *prometheus.CounterVec
	pings         prometheus.Counter
	subscriptions prometheus.Gauge
}

// NewMetrics creates the stream collectors and registers them with r.
// Registration errors are ignored so several clients can share a registry.
func NewMetrics(r prometheus.Registerer) *Metrics {
	m := &Metrics{
		connects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bybit", Subsystem: "ws", Name: "connects_total",
			Help: "Total WebSocket connection attempts",
		}, []string{"status"}),
		frames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bybit", Subsystem: "ws", Name: "frames_total",
			Help: "Inbound frames by classified shape",
		}, []string{"shape"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bybit", Subsystem: "ws", Name: "events_total",
			Help: "Events delivered to the caller",
		}, []string{"kind"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bybit", Subsystem: "ws", Name: "errors_total",
			Help: "Total categorized stream errors",
		}, []string{"type"}),
		pings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bybit", Subsystem: "ws", Name: "pings_total",
			Help: "Heartbeat frames sent",
		}),
		subscriptions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bybit", Subsystem: "ws", Name: "subscriptions",
			Help: "Channels in the active subscription set",
		}),
	}

	if r != nil {
		collectors := []prometheus.Collector{m.connects, m.frames, m.events, m.errors, m.pings, m.subscriptions}
		for _, c := range collectors {
			_ = r.Register(c)
		}
	}
	return m
}

func (m *Metrics) incConnect(status string) {
	if m != nil {
		m.connects.WithLabelValues(status).Inc()
	}
}

func (m *Metrics) incFrame(shape Shape) {
	if m != nil {
		m.frames.WithLabelValues(shape.String()).Inc()
	}
}

func (m *Metrics) incEvent(kind string) {
	if m != nil {
		m.events.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) incError(errType string) {
	if m != nil {
		m.errors.WithLabelValues(errType).Inc()
	}
}

func (m *Metrics) incPing() {
	if m != nil {
		m.pings.Inc()
	}
}

func (m *Metrics) setSubscriptions(n int) {
	if m != nil {
		m.subscriptions.Set(float64(n))
	}
}

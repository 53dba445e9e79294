package bridge

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	reasonDecode    = "decode"
	reasonReadError = "read_error"
)

// Metrics holds the Prometheus collectors updated by the read loop.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Delivered prometheus.Counter
	Skipped   *prometheus.CounterVec
	EOF       prometheus.Counter
	Running   prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg when reg is not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Delivered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "stdinbridge",
			Name:      "lines_delivered_total",
			Help:      "Lines pushed onto a bridge channel.",
		}),
		Skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stdinbridge",
			Name:      "reads_skipped_total",
			Help:      "Read attempts that produced no line, by reason.",
		}, []string{"reason"}),
		EOF: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "stdinbridge",
			Name:      "eof_total",
			Help:      "End-of-stream results returned by the source.",
		}),
		Running: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "stdinbridge",
			Name:      "workers_running",
			Help:      "Bridge workers currently running.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Delivered, m.Skipped, m.EOF, m.Running)
	}
	return m
}

func (m *Metrics) delivered() {
	if m != nil {
		m.Delivered.Inc()
	}
}

func (m *Metrics) skipped(reason string) {
	if m != nil {
		m.Skipped.WithLabelValues(reason).Inc()
	}
}

func (m *Metrics) eof() {
	if m != nil {
		m.EOF.Inc()
	}
}

func (m *Metrics) running(delta float64) {
	if m != nil {
		m.Running.Add(delta)
	}
}

// Stats is a snapshot of a bridge's loop counters.
type Stats struct {
	Delivered  uint64
	Decode     uint64
	ReadErrors uint64
	EOFs       uint64
}

type counters struct {
	delivered  atomic.Uint64
	decode     atomic.Uint64
	readErrors atomic.Uint64
	eofs       atomic.Uint64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Delivered:  c.delivered.Load(),
		Decode:     c.decode.Load(),
		ReadErrors: c.readErrors.Load(),
		EOFs:       c.eofs.Load(),
	}
}

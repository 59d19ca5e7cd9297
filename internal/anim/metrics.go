package anim

import "github.com/prometheus/client_golang/prometheus"

// metrics holds the optional Prometheus collectors of a Scheduler.
type metrics struct {
	started    prometheus.Counter
	completed  prometheus.Counter
	superseded prometheus.Counter
	cancelled  prometheus.Counter
	active     prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		started: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "flexui_transitions_started_total",
			Help: "Total number of property transitions started",
		}),
		completed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "flexui_transitions_completed_total",
			Help: "Total number of property transitions that reached their end value",
		}),
		superseded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "flexui_transitions_superseded_total",
			Help: "Total number of transitions replaced by a new run on the same key",
		}),
		cancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "flexui_transitions_cancelled_total",
			Help: "Total number of transitions cancelled before completion",
		}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "flexui_transitions_active",
			Help: "Number of transitions currently registered",
		}),
	}
	reg.MustRegister(m.started, m.completed, m.superseded, m.cancelled, m.active)
	return m
}

// The methods below tolerate a nil receiver so the scheduler can call them
// unconditionally.

func (m *metrics) start(active int) {
	if m == nil {
		return
	}
	m.started.Inc()
	m.active.Set(float64(active))
}

func (m *metrics) complete(active int) {
	if m == nil {
		return
	}
	m.completed.Inc()
	m.active.Set(float64(active))
}

func (m *metrics) supersede() {
	if m == nil {
		return
	}
	m.superseded.Inc()
}

func (m *metrics) cancel(active int) {
	if m == nil {
		return
	}
	m.cancelled.Inc()
	m.active.Set(float64(active))
}

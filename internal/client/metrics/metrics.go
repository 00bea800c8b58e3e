// Package metrics exposes Prometheus instruments for the login session.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const Namespace = "loginkeeper"

type Metrics struct {
	fetches  *prometheus.CounterVec
	storeOps *prometheus.CounterVec
	loggedIn prometheus.Gauge
}

// New creates the instruments and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "fetch_total",
			Help:      "Login user fetches by outcome.",
		}, []string{"status"}),
		storeOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "store_ops_total",
			Help:      "Persistence operations on the login user by result.",
		}, []string{"op", "result"}),
		loggedIn: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "logged_in",
			Help:      "1 while a non-default login user is held.",
		}),
	}
	reg.MustRegister(m.fetches, m.storeOps, m.loggedIn)
	return m
}

func (m *Metrics) ObserveFetch(status string) {
	if m == nil {
		return
	}
	m.fetches.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveStore(op string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.storeOps.WithLabelValues(op, result).Inc()
}

func (m *Metrics) SetLoggedIn(v bool) {
	if m == nil {
		return
	}
	if v {
		m.loggedIn.Set(1)
	} else {
		m.loggedIn.Set(0)
	}
}

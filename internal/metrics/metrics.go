// Package metrics описывает prometheus-метрики шлюза.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Результаты вызова контроллера шлагбаума.
const (
	ActuatorOK        = "ok"
	ActuatorFailed    = "failed"
	ActuatorAbandoned = "abandoned"
)

// Metrics счётчики и гистограммы жизненного цикла сессий и контроллера.
// Методы безопасны для nil-получателя.
type Metrics struct {
	EntriesOpened       prometheus.Counter
	EntriesFinalized    *prometheus.CounterVec
	DuplicateOpen       prometheus.Counter
	ActuatorRequests    *prometheus.CounterVec
	ActuatorDuration    prometheus.Histogram
	EventPublishFailure prometheus.Counter
}

// New регистрирует метрики в reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		EntriesOpened: f.NewCounter(prometheus.CounterOpts{
			Name: "access_gateway_entries_opened_total",
			Help: "Entries opened by registration",
		}),
		EntriesFinalized: f.NewCounterVec(prometheus.CounterOpts{
			Name: "access_gateway_entries_finalized_total",
			Help: "Entries finalized, by lookup key",
		}, []string{"by"}),
		DuplicateOpen: f.NewCounter(prometheus.CounterOpts{
			Name: "access_gateway_duplicate_open_entries_total",
			Help: "Registrations for a user that already had an OPEN entry",
		}),
		ActuatorRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "access_gateway_actuator_requests_total",
			Help: "Gate actuator requests by result",
		}, []string{"result"}),
		ActuatorDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "access_gateway_actuator_duration_seconds",
			Help:    "Duration of gate actuator requests",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		EventPublishFailure: f.NewCounter(prometheus.CounterOpts{
			Name: "access_gateway_event_publish_failures_total",
			Help: "Lifecycle events that could not be published",
		}),
	}
}

func (m *Metrics) IncOpened() {
	if m != nil {
		m.EntriesOpened.Inc()
	}
}

func (m *Metrics) IncFinalized(by string) {
	if m != nil {
		m.EntriesFinalized.WithLabelValues(by).Inc()
	}
}

func (m *Metrics) IncDuplicateOpen() {
	if m != nil {
		m.DuplicateOpen.Inc()
	}
}

// ObserveActuator записывает результат и длительность вызова контроллера.
func (m *Metrics) ObserveActuator(result string, d time.Duration) {
	if m != nil {
		m.ActuatorRequests.WithLabelValues(result).Inc()
		m.ActuatorDuration.Observe(d.Seconds())
	}
}

func (m *Metrics) IncPublishFailure() {
	if m != nil {
		m.EventPublishFailure.Inc()
	}
}

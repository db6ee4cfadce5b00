package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder registra el resultado de una operación de dominio.
type Recorder interface {
	Observe(op string, err error)
	Add(op string, n int)
}

// Nop descarta todo. Es el default de los services.
type Nop struct{}

func (Nop) Observe(string, error) {}
func (Nop) Add(string, int)       {}

// Classifier traduce un error a una etiqueta corta ("not_found", "invalid"...).
// Si es nil, cualquier error se etiqueta "error".
type Classifier func(err error) string

// Prometheus implementa Recorder sobre un registry propio (no el global),
// así los tests pueden crear varios sin colisiones.
type Prometheus struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	records    *prometheus.CounterVec
	classify   Classifier
}

func NewPrometheus(namespace string, classify Classifier) *Prometheus {
	if namespace == "" {
		namespace = "shelter"
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operations_total",
		Help:      "Domain operations by name and result.",
	}, []string{"op", "result"})

	recs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_affected_total",
		Help:      "Records created, updated or deleted by domain operations.",
	}, []string{"op"})

	reg.MustRegister(ops, recs)

	return &Prometheus{
		registry:   reg,
		operations: ops,
		records:    recs,
		classify:   classify,
	}
}

func (p *Prometheus) Observe(op string, err error) {
	p.operations.WithLabelValues(op, p.result(err)).Inc()
}

func (p *Prometheus) Add(op string, n int) {
	if n <= 0 {
		return
	}
	p.records.WithLabelValues(op).Add(float64(n))
}

func (p *Prometheus) result(err error) string {
	if err == nil {
		return "ok"
	}
	if p.classify != nil {
		if r := p.classify(err); r != "" {
			return r
		}
	}
	return "error"
}

// Registry expone el registry (útil en tests).
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// Handler sirve /metrics.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

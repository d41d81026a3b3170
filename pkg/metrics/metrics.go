package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "order_intake"

// Extraction outcomes.
const (
	OutcomeExtracted     = "extracted"
	OutcomeDefaultedDate = "defaulted_date"
	OutcomeNoName        = "no_name"
	OutcomeMalformed     = "malformed"
)

// Registry owns the service collectors. A nil *Registry is a valid no-op.
type Registry struct {
	reg *prometheus.Registry

	Extractions   *prometheus.CounterVec
	ExtractionSec prometheus.Histogram
	Imports       *prometheus.CounterVec
	Sidecars      *prometheus.CounterVec
	Requests      *prometheus.CounterVec
	LatencyMS     *prometheus.HistogramVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	extractions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "extractions_total",
		Help:      "Order text extractions by outcome.",
	}, []string{"outcome"})
	extractionSec := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "extraction_duration_seconds",
		Help:      "Time spent extracting a draft from raw text.",
		Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
	})
	imports := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "imports_total",
		Help:      "Imported orders by channel and result.",
	}, []string{"channel", "result"})
	sidecars := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "import_sidecar_total",
		Help:      "Post-import event publishing and calendar holds by result.",
	}, []string{"sidecar", "result"})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})

	r.MustRegister(
		extractions, extractionSec, imports, sidecars, requests, latency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &Registry{
		reg:           r,
		Extractions:   extractions,
		ExtractionSec: extractionSec,
		Imports:       imports,
		Sidecars:      sidecars,
		Requests:      requests,
		LatencyMS:     latency,
	}
}

func (r *Registry) Handler() http.Handler {
	if r == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

func (r *Registry) ObserveExtraction(outcome string, d time.Duration) {
	if r == nil {
		return
	}
	r.Extractions.WithLabelValues(outcome).Inc()
	r.ExtractionSec.Observe(d.Seconds())
}

func (r *Registry) ObserveImport(channel, result string) {
	if r == nil {
		return
	}
	r.Imports.WithLabelValues(channel, result).Inc()
}

func (r *Registry) ObserveSidecar(sidecar string, err error) {
	if r == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.Sidecars.WithLabelValues(sidecar, result).Inc()
}

func (r *Registry) ObserveRequest(handler string, status int, d time.Duration) {
	if r == nil {
		return
	}
	r.Requests.WithLabelValues(handler, strconv.Itoa(status)).Inc()
	r.LatencyMS.WithLabelValues(handler).Observe(float64(d.Microseconds()) / 1000)
}

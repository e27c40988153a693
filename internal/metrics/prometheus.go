package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aerologix/flightops/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	batchCounter   prometheus.Counter
	batchIssues    prometheus.Counter
	batchDuration  prometheus.Histogram
	alertsEnqueued *prometheus.CounterVec
	alertsDropped  *prometheus.CounterVec
	producerErrors *prometheus.CounterVec
	dispatched     *prometheus.CounterVec
	sinkErrors     *prometheus.CounterVec
	queueDepth     prometheus.Gauge
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "flightops" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "flightops"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.batchCounter = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "schedule",
			Name:      "batches_total",
			Help:      "Total assignment batches processed.",
		})
		p.batchIssues = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "schedule",
			Name:      "issues_total",
			Help:      "Total scheduling issues detected across batches.",
		})
		p.batchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "schedule",
			Name:      "batch_duration_seconds",
			Help:      "Latency of assignment batches in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms .. ~4s
		})
		p.alertsEnqueued = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "queue",
			Name:      "alerts_enqueued_total",
			Help:      "Total alert events accepted by the queue, by producer.",
		}, []string{"producer"})
		p.alertsDropped = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "queue",
			Name:      "alerts_dropped_total",
			Help:      "Total alert events dropped on overflow, by producer.",
		}, []string{"producer"})
		p.producerErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "producer",
			Name:      "errors_total",
			Help:      "Total failed producer ticks (errors and panics), by producer.",
		}, []string{"producer"})
		p.dispatched = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "dispatch",
			Name:      "events_total",
			Help:      "Total alert events forwarded to sinks, by severity.",
		}, []string{"severity"})
		p.sinkErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "dispatch",
			Name:      "sink_errors_total",
			Help:      "Total sink delivery failures, by sink.",
		}, []string{"sink"})
		p.queueDepth = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "queue",
			Name:      "depth",
			Help:      "Queue depth observed after the latest drain.",
		})

		collectors := []prometheus.Collector{
			p.batchCounter, p.batchIssues, p.batchDuration,
			p.alertsEnqueued, p.alertsDropped, p.producerErrors,
			p.dispatched, p.sinkErrors, p.queueDepth,
		}
		for _, c := range collectors {
			// Ignore AlreadyRegisteredError so shared registries are usable.
			_ = p.reg.Register(c)
		}
	})
}

// RecordAssignmentBatch records one completed engine batch.
func (p *PrometheusCollector) RecordAssignmentBatch(_, issues int, duration time.Duration) {
	p.ensureRegistered()
	p.batchCounter.Inc()
	p.batchIssues.Add(float64(issues))
	p.batchDuration.Observe(duration.Seconds())
}

// RecordAlertEnqueued records an accepted event.
func (p *PrometheusCollector) RecordAlertEnqueued(producer string) {
	p.ensureRegistered()
	p.alertsEnqueued.WithLabelValues(producer).Inc()
}

// RecordAlertDropped records a dropped event.
func (p *PrometheusCollector) RecordAlertDropped(producer string) {
	p.ensureRegistered()
	p.alertsDropped.WithLabelValues(producer).Inc()
}

// RecordProducerError records a failed producer tick.
func (p *PrometheusCollector) RecordProducerError(producer string) {
	p.ensureRegistered()
	p.producerErrors.WithLabelValues(producer).Inc()
}

// RecordDispatch records a forwarded event.
func (p *PrometheusCollector) RecordDispatch(severity types.Severity) {
	p.ensureRegistered()
	p.dispatched.WithLabelValues(severity.String()).Inc()
}

// RecordSinkError records a sink delivery failure.
func (p *PrometheusCollector) RecordSinkError(sink string) {
	p.ensureRegistered()
	p.sinkErrors.WithLabelValues(sink).Inc()
}

// RecordQueueDepth records the post-drain queue depth.
func (p *PrometheusCollector) RecordQueueDepth(depth int) {
	p.ensureRegistered()
	p.queueDepth.Set(float64(depth))
}

package rssfeed

import "time"

// Metrics is an optional interface for import telemetry. pkg/prommetrics
// provides a Prometheus implementation.
type Metrics interface {
	// IncrementCounter increments a counter metric.
	IncrementCounter(name string, value int64)
	// RecordDuration records a duration metric.
	RecordDuration(name string, duration time.Duration)
	// SetGauge sets a gauge metric.
	SetGauge(name string, value float64)
}

// Metric names reported by the importer. Skipped elements are reported under
// ElementSkippedMetric so that collectors can label them by element.
const (
	MetricItemsAccepted   = "import.items.accepted"
	MetricItemsSkipped    = "import.items.skipped"
	MetricElementsSkipped = "import.elements.skipped"
	MetricImportFailures  = "import.failures"
	MetricImportDuration  = "import.duration"
	MetricLastImportItems = "import.last.items"
)

// ElementSkippedMetric returns the counter name for a skipped element, e.g.
// "import.elements.skipped.enclosure".
func ElementSkippedMetric(element string) string {
	return MetricElementsSkipped + "." + element
}

// NopMetrics discards every measurement.
type NopMetrics struct{}

// IncrementCounter implements Metrics.
func (NopMetrics) IncrementCounter(name string, value int64) {}

// RecordDuration implements Metrics.
func (NopMetrics) RecordDuration(name string, duration time.Duration) {}

// SetGauge implements Metrics.
func (NopMetrics) SetGauge(name string, value float64) {}

var _ Metrics = NopMetrics{}

// Package prommetrics exports importer telemetry to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	imp := importer.New(importer.WithMetrics(prommetrics.NewCollector(reg)))
//	http.Handle("/metrics", prommetrics.Handler(reg))
package prommetrics

import (
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jdziat/rssfeed"
)

// Collector implements rssfeed.Metrics on top of Prometheus collectors.
// Names it does not recognise are dropped.
type Collector struct {
	items           *prometheus.CounterVec
	elementsSkipped *prometheus.CounterVec
	failures        prometheus.Counter
	duration        prometheus.Histogram
	lastItems       prometheus.Gauge
}

var _ rssfeed.Metrics = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		items: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rssfeed_import_items_total",
			Help: "Items seen by the importer, by result.",
		}, []string{"result"}),
		elementsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rssfeed_import_elements_skipped_total",
			Help: "Optional elements dropped because they failed validation.",
		}, []string{"element"}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rssfeed_import_failures_total",
			Help: "Imports that returned an error.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rssfeed_import_duration_seconds",
			Help:    "Time spent parsing and validating a feed.",
			Buckets: prometheus.DefBuckets,
		}),
		lastItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rssfeed_import_last_items",
			Help: "Number of items in the most recently imported channel.",
		}),
	}

	reg.MustRegister(
		c.items,
		c.elementsSkipped,
		c.failures,
		c.duration,
		c.lastItems,
	)

	return c
}

// IncrementCounter implements rssfeed.Metrics.
func (c *Collector) IncrementCounter(name string, value int64) {
	v := float64(value)
	switch name {
	case rssfeed.MetricItemsAccepted:
		c.items.WithLabelValues("accepted").Add(v)
	case rssfeed.MetricItemsSkipped:
		c.items.WithLabelValues("skipped").Add(v)
	case rssfeed.MetricImportFailures:
		c.failures.Add(v)
	default:
		if element, ok := strings.CutPrefix(name, rssfeed.MetricElementsSkipped+"."); ok {
			c.elementsSkipped.WithLabelValues(element).Add(v)
		}
	}
}

// RecordDuration implements rssfeed.Metrics.
func (c *Collector) RecordDuration(name string, duration time.Duration) {
	if name == rssfeed.MetricImportDuration {
		c.duration.Observe(duration.Seconds())
	}
}

// SetGauge implements rssfeed.Metrics.
func (c *Collector) SetGauge(name string, value float64) {
	if name == rssfeed.MetricLastImportItems {
		c.lastItems.Set(value)
	}
}

// Handler returns an HTTP handler serving the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

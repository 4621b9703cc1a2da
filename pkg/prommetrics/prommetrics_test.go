package prommetrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdziat/rssfeed"
)

func gather(t *testing.T, reg *prometheus.Registry) map[string]*dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	out := make(map[string]*dto.MetricFamily, len(families))
	for _, mf := range families {
		out[mf.GetName()] = mf
	}
	return out
}

func counterWithLabel(mf *dto.MetricFamily, value string) float64 {
	for _, m := range mf.GetMetric() {
		for _, l := range m.GetLabel() {
			if l.GetValue() == value {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestCollector_Items(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.IncrementCounter(rssfeed.MetricItemsAccepted, 3)
	c.IncrementCounter(rssfeed.MetricItemsSkipped, 1)
	c.IncrementCounter(rssfeed.MetricItemsAccepted, 2)

	families := gather(t, reg)
	mf, ok := families["rssfeed_import_items_total"]
	require.True(t, ok)
	assert.Equal(t, 5.0, counterWithLabel(mf, "accepted"))
	assert.Equal(t, 1.0, counterWithLabel(mf, "skipped"))
}

func TestCollector_ElementsSkipped(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.IncrementCounter(rssfeed.ElementSkippedMetric("enclosure"), 1)
	c.IncrementCounter(rssfeed.ElementSkippedMetric("enclosure"), 1)
	c.IncrementCounter(rssfeed.ElementSkippedMetric("image"), 1)
	c.IncrementCounter("unrelated.counter", 10)

	mf := gather(t, reg)["rssfeed_import_elements_skipped_total"]
	require.NotNil(t, mf)
	assert.Equal(t, 2.0, counterWithLabel(mf, "enclosure"))
	assert.Equal(t, 1.0, counterWithLabel(mf, "image"))
	assert.Len(t, mf.GetMetric(), 2)
}

func TestCollector_DurationGaugeFailures(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordDuration(rssfeed.MetricImportDuration, 250*time.Millisecond)
	c.RecordDuration("other", time.Second)
	c.SetGauge(rssfeed.MetricLastImportItems, 12)
	c.IncrementCounter(rssfeed.MetricImportFailures, 1)

	families := gather(t, reg)

	hist := families["rssfeed_import_duration_seconds"].GetMetric()[0].GetHistogram()
	assert.Equal(t, uint64(1), hist.GetSampleCount())
	assert.InDelta(t, 0.25, hist.GetSampleSum(), 1e-9)

	assert.Equal(t, 12.0, families["rssfeed_import_last_items"].GetMetric()[0].GetGauge().GetValue())
	assert.Equal(t, 1.0, families["rssfeed_import_failures_total"].GetMetric()[0].GetCounter().GetValue())
}

func TestHandler_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.IncrementCounter(rssfeed.MetricItemsAccepted, 1)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, req)

	resp := w.Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `rssfeed_import_items_total{result="accepted"} 1`)
}

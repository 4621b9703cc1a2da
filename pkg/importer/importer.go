package importer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/mmcdole/gofeed/rss"

	"github.com/jdziat/rssfeed"
	"github.com/jdziat/rssfeed/internal/validate"
	"github.com/jdziat/rssfeed/pkg/sanitize"
)

// ErrNotRSS is returned when the input is a feed of another format (Atom,
// JSON Feed) or not a feed at all.
var ErrNotRSS = errors.New("importer: document is not an RSS feed")

// Importer converts RSS documents into rssfeed.Channel values. An Importer is
// safe for concurrent use; each import keeps its own state.
type Importer struct {
	logger        rssfeed.StructuredLogger
	metrics       rssfeed.Metrics
	strict        bool
	sanitizer     *sanitize.Sanitizer
	generateGUIDs bool

	mu    sync.Mutex
	stats Stats
}

// New creates an Importer. Without options it is lenient, does not sanitize,
// does not generate guids and discards logs and metrics.
func New(opts ...Option) *Importer {
	i := &Importer{
		logger:  rssfeed.NopLogger{},
		metrics: rssfeed.NopMetrics{},
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Strict reports whether the importer fails on the first invalid element.
func (i *Importer) Strict() bool {
	return i.strict
}

// Stats summarises a single import.
type Stats struct {
	ItemsAccepted   int
	ItemsSkipped    int
	ElementsSkipped int
	Skipped         []Skipped
	Duration        time.Duration
}

// Skipped describes an element dropped by a lenient import.
type Skipped struct {
	// Element is the RSS element name, e.g. "enclosure" or "item".
	Element string
	// Field is the full path of the invalid field, e.g. "item[3].enclosure.length".
	Field string
	Err   error
}

// Result is a validated channel together with the statistics of its import.
type Result struct {
	Channel rssfeed.Channel
	Stats   Stats
}

// Import reads an RSS document from r and converts it.
func (i *Importer) Import(r io.Reader) (Result, error) {
	start := time.Now()

	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, i.fail(fmt.Errorf("importer: read: %w", err))
	}
	if gofeed.DetectFeedType(bytes.NewReader(data)) != gofeed.FeedTypeRSS {
		return Result{}, i.fail(ErrNotRSS)
	}

	var parser rss.Parser
	feed, err := parser.Parse(bytes.NewReader(data))
	if err != nil {
		return Result{}, i.fail(fmt.Errorf("importer: parse: %w", err))
	}

	res, err := i.convert(feed, guidPermaLinks(data))
	if err != nil {
		return Result{}, err
	}
	res.Stats.Duration = time.Since(start)
	i.metrics.RecordDuration(rssfeed.MetricImportDuration, res.Stats.Duration)
	i.record(res.Stats)
	return res, nil
}

// Parse reads an RSS document from r and returns the validated channel.
func (i *Importer) Parse(r io.Reader) (rssfeed.Channel, error) {
	res, err := i.Import(r)
	if err != nil {
		return rssfeed.Channel{}, err
	}
	return res.Channel, nil
}

// Channel converts a feed already parsed by gofeed's RSS parser.
func (i *Importer) Channel(feed *rss.Feed) (rssfeed.Channel, error) {
	if feed == nil {
		return rssfeed.Channel{}, i.fail(validate.Required("channel", ""))
	}
	res, err := i.convert(feed, nil)
	if err != nil {
		return rssfeed.Channel{}, err
	}
	i.record(res.Stats)
	return res.Channel, nil
}

// ImportStats returns the statistics of the most recent successful import.
func (i *Importer) ImportStats() Stats {
	i.mu.Lock()
	defer i.mu.Unlock()
	stats := i.stats
	stats.Skipped = append([]Skipped(nil), i.stats.Skipped...)
	return stats
}

func (i *Importer) convert(feed *rss.Feed, guidAttrs []string) (Result, error) {
	r := &run{Importer: i}
	if len(guidAttrs) == len(feed.Items) {
		r.guidAttrs = guidAttrs
	}
	ch, err := r.channel(feed)
	if err != nil {
		return Result{}, i.fail(err)
	}

	i.metrics.IncrementCounter(rssfeed.MetricItemsAccepted, int64(r.stats.ItemsAccepted))
	i.metrics.SetGauge(rssfeed.MetricLastImportItems, float64(r.stats.ItemsAccepted))
	i.logger.Debug("imported channel",
		"title", ch.Title(),
		"items", r.stats.ItemsAccepted,
		"items_skipped", r.stats.ItemsSkipped,
		"elements_skipped", r.stats.ElementsSkipped,
	)
	return Result{Channel: ch, Stats: r.stats}, nil
}

func (i *Importer) record(stats Stats) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.stats = stats
}

func (i *Importer) fail(err error) error {
	i.metrics.IncrementCounter(rssfeed.MetricImportFailures, 1)
	i.logger.Error("import failed", "error", err)
	return err
}

// run holds the state of one conversion.
type run struct {
	*Importer
	stats Stats

	// guidAttrs holds the raw isPermaLink attribute of each item's guid,
	// indexed like the parsed items. Nil when unknown.
	guidAttrs []string
	// pending collects the skips inside the item being converted. They are
	// only recorded once the item itself is kept.
	pending []Skipped
	inItem  bool
}

// keep decides what happens to an element whose validation returned err.
// It reports whether the element can be used. In strict mode a failure is
// returned with its field qualified by at; otherwise it is recorded and
// swallowed.
func (r *run) keep(element, at string, err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if at != "" {
		err = validate.Nested(at, err)
	}
	if r.strict {
		return false, err
	}

	field := at
	if ve, ok := rssfeed.AsValidationError(err); ok {
		field = ve.Field
	}
	s := Skipped{Element: element, Field: field, Err: err}
	if r.inItem {
		r.pending = append(r.pending, s)
		return false, nil
	}
	r.record(s)
	return false, nil
}

// beginItem starts collecting skips for an item.
func (r *run) beginItem() {
	r.inItem = true
	r.pending = r.pending[:0]
}

// endItem records the skips collected since beginItem when the item was
// kept and discards them when it was dropped.
func (r *run) endItem(kept bool) {
	r.inItem = false
	if kept {
		for _, s := range r.pending {
			r.record(s)
		}
	}
	r.pending = r.pending[:0]
}

// record counts, reports and logs a skipped element.
func (r *run) record(s Skipped) {
	r.stats.Skipped = append(r.stats.Skipped, s)
	if s.Element == "item" {
		r.stats.ItemsSkipped++
		r.metrics.IncrementCounter(rssfeed.MetricItemsSkipped, 1)
	} else {
		r.stats.ElementsSkipped++
		r.metrics.IncrementCounter(rssfeed.ElementSkippedMetric(s.Element), 1)
	}
	r.logger.Warn("skipping invalid element", "element", s.Element, "field", s.Field, "error", s.Err)
}

// guidPermaLink returns the raw isPermaLink attribute of item idx, if known.
func (r *run) guidPermaLink(idx int) string {
	if idx < len(r.guidAttrs) {
		return r.guidAttrs[idx]
	}
	return ""
}

func (r *run) sanitize(s string) string {
	if r.sanitizer == nil {
		return s
	}
	return r.sanitizer.Sanitize(s)
}

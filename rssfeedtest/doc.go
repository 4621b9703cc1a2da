// Package rssfeedtest provides testing utilities for code built on the rssfeed
// package.
//
// # Fixtures
//
// SampleChannel and SampleItem return fully populated values built through the
// public builders, and SampleRSS holds the same feed as an RSS 2.0 document:
//
//	func TestRender(t *testing.T) {
//	    ch := rssfeedtest.SampleChannel(t)
//	    out, err := rssxml.Marshal(ch)
//	    // ...
//	}
//
// # Mock Metrics
//
// Use MockMetrics to verify metrics are recorded correctly:
//
//	metrics := rssfeedtest.NewMockMetrics()
//	imp := importer.New(importer.WithMetrics(metrics))
//	// ... import a feed ...
//
//	if metrics.GetCounter(rssfeed.MetricItemsAccepted) != 2 {
//	    t.Error("expected 2 accepted items")
//	}
//
// # Mock Logger
//
// Use MockLogger to capture structured log output:
//
//	logger := rssfeedtest.NewMockLogger()
//	imp := importer.New(importer.WithLogger(logger))
//	// ... import a feed ...
//
//	entries := logger.Entries()
package rssfeedtest

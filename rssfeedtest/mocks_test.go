package rssfeedtest

import (
	"testing"
	"time"
)

func TestMockMetrics_Counter(t *testing.T) {
	m := NewMockMetrics()

	m.IncrementCounter("items", 1)
	m.IncrementCounter("items", 2)
	m.IncrementCounter("other", 5)

	if got := m.GetCounter("items"); got != 3 {
		t.Errorf("GetCounter(items) = %d, want 3", got)
	}
	if got := m.GetCounter("other"); got != 5 {
		t.Errorf("GetCounter(other) = %d, want 5", got)
	}
	if got := m.GetCounter("missing"); got != 0 {
		t.Errorf("GetCounter(missing) = %d, want 0", got)
	}
}

func TestMockMetrics_GaugeAndTimings(t *testing.T) {
	m := NewMockMetrics()

	m.SetGauge("last_items", 10)
	m.SetGauge("last_items", 12)
	m.RecordDuration("import", 100*time.Millisecond)
	m.RecordDuration("import", 200*time.Millisecond)

	if got := m.GetGauge("last_items"); got != 12 {
		t.Errorf("GetGauge(last_items) = %f, want 12", got)
	}
	timings := m.GetTimings("import")
	if len(timings) != 2 || timings[1] != 200*time.Millisecond {
		t.Errorf("GetTimings(import) = %v", timings)
	}

	m.Reset()
	if m.GetCounter("items") != 0 || m.GetGauge("last_items") != 0 || len(m.GetTimings("import")) != 0 {
		t.Error("Reset did not clear recorded metrics")
	}
}

func TestMockLogger(t *testing.T) {
	l := NewMockLogger()

	l.Debug("parsing", "bytes", 10)
	l.Warn("skipping element", "element", "image")
	l.Warn("skipping element", "element", "cloud")
	l.Error("import failed")

	if got := l.MessageCount(); got != 4 {
		t.Fatalf("MessageCount() = %d, want 4", got)
	}
	if got := l.CountLevel("warn"); got != 2 {
		t.Errorf("CountLevel(warn) = %d, want 2", got)
	}
	entries := l.Entries()
	if entries[1].Args[1] != "image" {
		t.Errorf("entries[1].Args = %v", entries[1].Args)
	}
	if msgs := l.GetMessages(); msgs[3] != "import failed" {
		t.Errorf("GetMessages()[3] = %q", msgs[3])
	}

	l.Reset()
	if l.MessageCount() != 0 {
		t.Error("Reset did not clear entries")
	}
}

func TestSampleChannel_Mocks(t *testing.T) {
	ch := SampleChannel(t)

	if ch.Title() != SampleTitle {
		t.Errorf("Title() = %q", ch.Title())
	}
	if got := len(ch.Items()); got != 1 {
		t.Fatalf("len(Items()) = %d, want 1", got)
	}
	if _, ok := ch.ITunesExt(); !ok {
		t.Error("ITunesExt() missing")
	}
}

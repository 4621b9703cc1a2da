package rssfeedtest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jdziat/rssfeed"
)

// recordingT captures Fatalf instead of stopping the test.
type recordingT struct {
	failed  bool
	message string
}

func (r *recordingT) Fatalf(format string, args ...any) {
	r.failed = true
	r.message = fmt.Sprintf(format, args...)
}

func (r *recordingT) Helper() {}

func TestMust(t *testing.T) {
	cat := Must(rssfeed.NewCategoryBuilder().Name("Linux").Build())
	if cat.Name() != "Linux" {
		t.Errorf("Name() = %q, want Linux", cat.Name())
	}
}

func TestMust_PanicsOnError(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic")
		}
		if msg, _ := r.(string); !strings.Contains(msg, `"name"`) {
			t.Errorf("panic message %q does not name the field", msg)
		}
	}()
	Must(rssfeed.NewCategoryBuilder().Build())
}

func TestFatalOnPanic(t *testing.T) {
	rt := &recordingT{}
	func() {
		defer fatalOnPanic(rt)
		Must(rssfeed.NewEnclosureBuilder().URL("not a url").Build())
	}()

	if !rt.failed {
		t.Fatal("expected Fatalf to be called")
	}
	if !strings.Contains(rt.message, "rssfeedtest: unexpected error") {
		t.Errorf("unexpected message %q", rt.message)
	}
}

func TestFatalOnPanic_NoPanic(t *testing.T) {
	rt := &recordingT{}
	func() {
		defer fatalOnPanic(rt)
	}()
	if rt.failed {
		t.Error("Fatalf called without a panic")
	}
}

func TestSampleChannel(t *testing.T) {
	ch := SampleChannel(t)

	if ch.Title() != SampleTitle {
		t.Errorf("Title() = %q", ch.Title())
	}
	if got := ch.SkipHours(); len(got) != 5 || got[4] != "22" {
		t.Errorf("SkipHours() = %v", got)
	}
	items := ch.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	enc, ok := items[0].Enclosure()
	if !ok || enc.URL() != SampleEnclosure {
		t.Errorf("Enclosure() = %v, %v", enc, ok)
	}
	if _, ok := ch.ITunesExt(); !ok {
		t.Error("expected an iTunes extension")
	}
}

package rssfeed_test

import (
	"errors"
	"testing"

	"github.com/jdziat/rssfeed"
)

func TestCloudBuilder(t *testing.T) {
	t.Run("validate then finalize", func(t *testing.T) {
		b, err := rssfeed.NewCloudBuilder().
			Domain("http://rpc.sys.com/").
			Port(80).
			Path("/RPC2").
			RegisterProcedure("pingMe").
			Protocol("soap").
			Validate()
		if err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		cloud, err := b.Finalize()
		if err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}

		if cloud.Domain() != "http://rpc.sys.com/" {
			t.Errorf("Domain() = %q", cloud.Domain())
		}
		if cloud.Port() != "80" {
			t.Errorf("Port() = %q, want %q", cloud.Port(), "80")
		}
		if cloud.Path() != "/RPC2" {
			t.Errorf("Path() = %q", cloud.Path())
		}
		if cloud.RegisterProcedure() != "pingMe" {
			t.Errorf("RegisterProcedure() = %q", cloud.RegisterProcedure())
		}
		if cloud.Protocol() != "soap" {
			t.Errorf("Protocol() = %q", cloud.Protocol())
		}
	})

	t.Run("invalid domain", func(t *testing.T) {
		_, err := rssfeed.NewCloudBuilder().Domain("rpc.sys.com").Port(80).Validate()
		assertField(t, err, "domain", rssfeed.ErrInvalidURL)
	})

	t.Run("negative port", func(t *testing.T) {
		_, err := rssfeed.NewCloudBuilder().Domain("http://rpc.sys.com/").Port(-1).Validate()
		assertField(t, err, "port", rssfeed.ErrNegativeValue)
	})

	t.Run("finalize rejects negative port without validate", func(t *testing.T) {
		_, err := rssfeed.NewCloudBuilder().Domain("http://rpc.sys.com/").Port(-80).Finalize()
		assertField(t, err, "port", rssfeed.ErrNegativeValue)
	})

	t.Run("defaults", func(t *testing.T) {
		cloud, err := rssfeed.NewCloudBuilder().Finalize()
		if err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}
		if cloud.Domain() != "" || cloud.Path() != "" || cloud.Protocol() != "" {
			t.Errorf("unset strings should be empty, got %+v", cloud)
		}
		if cloud.Port() != "0" {
			t.Errorf("Port() = %q, want %q", cloud.Port(), "0")
		}
	})
}

func TestEnclosureBuilder(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		length    int64
		mimeType  string
		wantField string
		wantErr   error
	}{
		{"valid", "http://example.com/ep1.mp3", 1024, "audio/mpeg", "", nil},
		{"zero length", "http://example.com/ep1.mp3", 0, "audio/mpeg", "", nil},
		{"negative length", "http://example.com/ep1.mp3", -5, "audio/mpeg", "length", rssfeed.ErrNegativeValue},
		{"bad url", "ep1.mp3", 1024, "audio/mpeg", "url", rssfeed.ErrInvalidURL},
		{"bad mime type", "http://example.com/ep1.mp3", 1024, "mpeg", "type", rssfeed.ErrInvalidMimeType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := rssfeed.NewEnclosureBuilder().URL(tt.url).Length(tt.length).MimeType(tt.mimeType)
			got, err := b.Validate()
			if tt.wantErr != nil {
				assertField(t, err, tt.wantField, tt.wantErr)
				if got != nil {
					t.Error("Validate() should return a nil builder on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if got != b {
				t.Error("Validate() should return the same builder")
			}
		})
	}

	t.Run("validate leaves builder unchanged", func(t *testing.T) {
		b := rssfeed.NewEnclosureBuilder().URL("http://example.com/a.ogg").Length(42).MimeType("audio/ogg")
		before, _ := b.Finalize()
		if _, err := b.Validate(); err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		after, _ := b.Finalize()
		if before != after {
			t.Errorf("Validate() changed builder state: %+v != %+v", before, after)
		}
	})

	t.Run("length is rendered in decimal", func(t *testing.T) {
		enc, err := rssfeed.NewEnclosureBuilder().URL("http://example.com/a.ogg").Length(65036288).MimeType("audio/ogg").Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if enc.Length() != "65036288" {
			t.Errorf("Length() = %q", enc.Length())
		}
		if enc.URL() != "http://example.com/a.ogg" || enc.MimeType() != "audio/ogg" {
			t.Errorf("unexpected enclosure %+v", enc)
		}
	})
}

func TestGuidBuilder(t *testing.T) {
	t.Run("defaults to permalink", func(t *testing.T) {
		guid, err := rssfeed.NewGuidBuilder().Value("http://example.com/1").Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if !guid.IsPermalink() {
			t.Error("IsPermalink() should default to true")
		}
		if guid.Value() != "http://example.com/1" {
			t.Errorf("Value() = %q", guid.Value())
		}
	})

	t.Run("explicit non-permalink", func(t *testing.T) {
		guid, err := rssfeed.NewGuidBuilder().Value("episode-1").IsPermalink(false).Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if guid.IsPermalink() {
			t.Error("IsPermalink() = true, want false")
		}
	})

	t.Run("missing value", func(t *testing.T) {
		_, err := rssfeed.NewGuidBuilder().Validate()
		assertField(t, err, "guid", rssfeed.ErrMissingField)
	})
}

func TestSourceBuilder(t *testing.T) {
	src, err := rssfeed.NewSourceBuilder().URL("http://www.tomalak.org/links2.xml").Title("Tomalak's Realm").Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if src.URL() != "http://www.tomalak.org/links2.xml" {
		t.Errorf("URL() = %q", src.URL())
	}
	if title, ok := src.Title(); !ok || title != "Tomalak's Realm" {
		t.Errorf("Title() = %q, %v", title, ok)
	}

	untitled, err := rssfeed.NewSourceBuilder().URL("http://www.tomalak.org/links2.xml").Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if _, ok := untitled.Title(); ok {
		t.Error("Title() should be absent when never set")
	}

	_, err = rssfeed.NewSourceBuilder().URL("not a url").Validate()
	assertField(t, err, "url", rssfeed.ErrInvalidURL)
}

func TestTextInputBuilder(t *testing.T) {
	ti, err := rssfeed.NewTextInputBuilder().
		Title("Search").
		Description("Search the archive").
		Name("q").
		Link("http://example.com/search").
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if ti.Title() != "Search" || ti.Description() != "Search the archive" || ti.Name() != "q" || ti.Link() != "http://example.com/search" {
		t.Errorf("unexpected text input %+v", ti)
	}

	_, err = rssfeed.NewTextInputBuilder().Link("/search").Validate()
	assertField(t, err, "link", rssfeed.ErrInvalidURL)
}

func TestImageBuilder(t *testing.T) {
	base := func() *rssfeed.ImageBuilder {
		return rssfeed.NewImageBuilder().
			URL("http://example.com/logo.png").
			Link("http://example.com/").
			Title("Example")
	}

	t.Run("dimensions absent by default", func(t *testing.T) {
		img, err := base().Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if _, ok := img.Width(); ok {
			t.Error("Width() should be absent")
		}
		if _, ok := img.Height(); ok {
			t.Error("Height() should be absent")
		}
		if _, ok := img.Description(); ok {
			t.Error("Description() should be absent")
		}
	})

	t.Run("dimensions converted to text", func(t *testing.T) {
		img, err := base().Width(rssfeed.MaxImageWidth).Height(rssfeed.MaxImageHeight).Description("logo").Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if w, _ := img.Width(); w != "144" {
			t.Errorf("Width() = %q", w)
		}
		if h, _ := img.Height(); h != "400" {
			t.Errorf("Height() = %q", h)
		}
	})

	t.Run("width too large", func(t *testing.T) {
		_, err := base().Width(145).Validate()
		assertField(t, err, "width", rssfeed.ErrOutOfRange)
	})

	t.Run("negative height", func(t *testing.T) {
		_, err := base().Height(-1).Validate()
		assertField(t, err, "height", rssfeed.ErrNegativeValue)
	})

	t.Run("bad link", func(t *testing.T) {
		_, err := base().Link("example.com").Validate()
		assertField(t, err, "link", rssfeed.ErrInvalidURL)
	})
}

func TestCategoryBuilder(t *testing.T) {
	cat, err := rssfeed.NewCategoryBuilder().Name("Grateful Dead").Domain("http://www.fool.com/cusips").Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if cat.Name() != "Grateful Dead" {
		t.Errorf("Name() = %q", cat.Name())
	}
	if domain, ok := cat.Domain(); !ok || domain != "http://www.fool.com/cusips" {
		t.Errorf("Domain() = %q, %v", domain, ok)
	}

	_, err = rssfeed.NewCategoryBuilder().Validate()
	assertField(t, err, "name", rssfeed.ErrMissingField)

	_, err = rssfeed.NewCategoryBuilder().Name("x").Domain("cusips").Validate()
	assertField(t, err, "domain", rssfeed.ErrInvalidURL)
}

func TestFinalize_Idempotent(t *testing.T) {
	b := rssfeed.NewCloudBuilder().Domain("http://rpc.sys.com/").Port(80).Path("/RPC2")

	first, err := b.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	second, err := b.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if first != second {
		t.Errorf("Finalize() not idempotent: %+v != %+v", first, second)
	}
}

// assertField fails unless err is a *ValidationError for field wrapping want.
func assertField(t *testing.T, err error, field string, want error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error for field %q, got nil", field)
	}
	ve, ok := rssfeed.AsValidationError(err)
	if !ok {
		t.Fatalf("error %v is not a ValidationError", err)
	}
	if ve.Field != field {
		t.Errorf("Field = %q, want %q", ve.Field, field)
	}
	if !errors.Is(err, want) {
		t.Errorf("errors.Is(%v, %v) = false", err, want)
	}
}

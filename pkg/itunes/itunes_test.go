package itunes

import (
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/jdziat/rssfeed/pkg/errors"
)

func TestCategoryBuilder(t *testing.T) {
	t.Run("nested subcategory", func(t *testing.T) {
		sub, err := NewCategoryBuilder().Text("Podcasting").Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		c, err := NewCategoryBuilder().Text("Technology").Subcategory(sub).Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}

		if c.Text() != "Technology" {
			t.Errorf("Text() = %q", c.Text())
		}
		got, ok := c.Subcategory()
		if !ok || got.Text() != "Podcasting" {
			t.Errorf("Subcategory() = (%v, %v)", got, ok)
		}
		if _, ok := got.Subcategory(); ok {
			t.Error("leaf subcategory should have no subcategory")
		}
	})

	t.Run("empty text fails", func(t *testing.T) {
		_, err := NewCategoryBuilder().Validate()
		if !stderrors.Is(err, errors.ErrMissingField) {
			t.Errorf("Validate() = %v, want ErrMissingField", err)
		}
	})

	t.Run("unvalidated empty subcategory is caught", func(t *testing.T) {
		sub, _ := NewCategoryBuilder().Finalize()
		_, err := NewCategoryBuilder().Text("Arts").Subcategory(sub).Validate()
		ve, ok := errors.AsValidationError(err)
		if !ok {
			t.Fatalf("Validate() = %v, want validation error", err)
		}
		if ve.Field != "subcategory.text" {
			t.Errorf("Field = %q, want subcategory.text", ve.Field)
		}
	})

	t.Run("deep nesting is allowed", func(t *testing.T) {
		leaf, _ := NewCategoryBuilder().Text("c").Build()
		mid, _ := NewCategoryBuilder().Text("b").Subcategory(leaf).Build()
		if _, err := NewCategoryBuilder().Text("a").Subcategory(mid).Build(); err != nil {
			t.Errorf("Build() error = %v", err)
		}
	})
}

func TestOwnerBuilder(t *testing.T) {
	o, err := NewOwnerBuilder().Email("chris@example.com").Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if email, ok := o.Email(); !ok || email != "chris@example.com" {
		t.Errorf("Email() = (%q, %v)", email, ok)
	}
	if _, ok := o.Name(); ok {
		t.Error("Name() should be absent")
	}
}

func TestChannelExtensionBuilder(t *testing.T) {
	owner, _ := NewOwnerBuilder().Name("Chris Fisher").Build()
	tech, _ := NewCategoryBuilder().Text("Technology").Build()

	t.Run("round trip", func(t *testing.T) {
		b := NewChannelExtensionBuilder().
			Author("Jupiter Broadcasting").
			Block("no").
			Categories([]Category{tech}).
			Explicit("no").
			Keywords("linux,open source").
			Owner(owner).
			Subtitle("Linux news").
			Summary("A weekly show").
			Image("http://www.jupiterbroadcasting.com/images/LAS-300-Badge.jpg").
			Complete("yes").
			NewFeedURL("http://feeds.example.com/las").
			Type("episodic")

		ext, err := b.Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}

		checks := []struct {
			name string
			get  func() (string, bool)
			want string
		}{
			{"author", ext.Author, "Jupiter Broadcasting"},
			{"block", ext.Block, "no"},
			{"explicit", ext.Explicit, "no"},
			{"keywords", ext.Keywords, "linux,open source"},
			{"subtitle", ext.Subtitle, "Linux news"},
			{"summary", ext.Summary, "A weekly show"},
			{"image", ext.Image, "http://www.jupiterbroadcasting.com/images/LAS-300-Badge.jpg"},
			{"complete", ext.Complete, "yes"},
			{"new-feed-url", ext.NewFeedURL, "http://feeds.example.com/las"},
			{"type", ext.Type, "episodic"},
		}
		for _, c := range checks {
			if got, ok := c.get(); !ok || got != c.want {
				t.Errorf("%s = (%q, %v), want %q", c.name, got, ok, c.want)
			}
		}

		if got, ok := ext.Owner(); !ok || !reflect.DeepEqual(got, owner) {
			t.Errorf("Owner() = (%v, %v)", got, ok)
		}
		if cats := ext.Categories(); len(cats) != 1 || cats[0].Text() != "Technology" {
			t.Errorf("Categories() = %v", cats)
		}

		again, _ := b.Finalize()
		if !reflect.DeepEqual(ext, again) {
			t.Error("Finalize should be idempotent")
		}
	})

	t.Run("defaults", func(t *testing.T) {
		ext, err := NewChannelExtensionBuilder().Finalize()
		if err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}
		if _, ok := ext.Author(); ok {
			t.Error("Author() should be absent")
		}
		if _, ok := ext.Owner(); ok {
			t.Error("Owner() should be absent")
		}
		if cats := ext.Categories(); cats == nil || len(cats) != 0 {
			t.Errorf("Categories() = %#v, want empty non-nil", cats)
		}
	})

	t.Run("invalid image", func(t *testing.T) {
		_, err := NewChannelExtensionBuilder().Image("cover.jpg").Validate()
		if !stderrors.Is(err, errors.ErrInvalidURL) {
			t.Errorf("Validate() = %v, want ErrInvalidURL", err)
		}
	})

	t.Run("invalid category reports index", func(t *testing.T) {
		empty, _ := NewCategoryBuilder().Finalize()
		_, err := NewChannelExtensionBuilder().AddCategory(tech).AddCategory(empty).Validate()
		ve, ok := errors.AsValidationError(err)
		if !ok || ve.Field != "category[1].text" {
			t.Errorf("Validate() = %v, want field category[1].text", err)
		}
	})

	t.Run("categories are copied", func(t *testing.T) {
		cats := []Category{tech}
		ext, _ := NewChannelExtensionBuilder().Categories(cats).Finalize()
		cats[0] = Category{text: "Changed"}
		if ext.Categories()[0].Text() != "Technology" {
			t.Error("finalized extension should not alias the caller's slice")
		}
	})
}

func TestItemExtensionBuilder(t *testing.T) {
	ext, err := NewItemExtensionBuilder().
		Author("Jupiter Broadcasting").
		Duration("01:10:04").
		Explicit("no").
		Image("http://example.com/ep408.jpg").
		IsClosedCaptioned("no").
		Episode("408").
		Season("9").
		Order("1").
		EpisodeType("full").
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if d, ok := ext.Duration(); !ok || d != "01:10:04" {
		t.Errorf("Duration() = (%q, %v)", d, ok)
	}
	if e, ok := ext.Episode(); !ok || e != "408" {
		t.Errorf("Episode() = (%q, %v)", e, ok)
	}
	if _, ok := ext.Summary(); ok {
		t.Error("Summary() should be absent")
	}

	_, err = NewItemExtensionBuilder().Image("not a url").Build()
	if !stderrors.Is(err, errors.ErrInvalidURL) {
		t.Errorf("Build() = %v, want ErrInvalidURL", err)
	}
}

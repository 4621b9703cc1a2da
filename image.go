package rssfeed

import (
	"github.com/jdziat/rssfeed/internal/validate"
	"github.com/jdziat/rssfeed/pkg/optional"
	"github.com/jdziat/rssfeed/pkg/stringutil"
)

// Maximum image dimensions allowed by RSS 2.0.
const (
	MaxImageWidth  = 144
	MaxImageHeight = 400
)

// Image is an immutable <image> element: a GIF, JPEG or PNG representing the
// channel.
type Image struct {
	url         string
	link        string
	title       string
	width       optional.Value[string]
	height      optional.Value[string]
	description optional.Value[string]
}

// URL returns the location of the image.
func (i Image) URL() string {
	return i.url
}

// Link returns the URL of the site the image links to.
func (i Image) Link() string {
	return i.link
}

// Title returns the image alt text.
func (i Image) Title() string {
	return i.title
}

// Width returns the width in pixels, in decimal form, if set.
func (i Image) Width() (string, bool) {
	return i.width.Get()
}

// Height returns the height in pixels, in decimal form, if set.
func (i Image) Height() (string, bool) {
	return i.height.Get()
}

// Description returns the title attribute of the link, if set.
func (i Image) Description() (string, bool) {
	return i.description.Get()
}

// ImageBuilder configures an Image.
type ImageBuilder struct {
	url         string
	link        string
	title       string
	width       optional.Value[int64]
	height      optional.Value[int64]
	description optional.Value[string]
}

// NewImageBuilder returns a builder with every field unset.
func NewImageBuilder() *ImageBuilder {
	return &ImageBuilder{}
}

// URL sets the image url.
func (b *ImageBuilder) URL(url string) *ImageBuilder {
	b.url = url
	return b
}

// Link sets the image link.
func (b *ImageBuilder) Link(link string) *ImageBuilder {
	b.link = link
	return b
}

// Title sets the image title.
func (b *ImageBuilder) Title(title string) *ImageBuilder {
	b.title = title
	return b
}

// Width sets the image width in pixels.
func (b *ImageBuilder) Width(width int64) *ImageBuilder {
	b.width = optional.Some(width)
	return b
}

// Height sets the image height in pixels.
func (b *ImageBuilder) Height(height int64) *ImageBuilder {
	b.height = optional.Some(height)
	return b
}

// Description sets the image description.
func (b *ImageBuilder) Description(description string) *ImageBuilder {
	b.description = optional.Some(description)
	return b
}

// Validate checks url and link are URLs and the dimensions are within the
// limits of MaxImageWidth and MaxImageHeight.
func (b *ImageBuilder) Validate() (*ImageBuilder, error) {
	if err := validate.URL("url", b.url); err != nil {
		return nil, err
	}
	if err := validate.URL("link", b.link); err != nil {
		return nil, err
	}
	if w, ok := b.width.Get(); ok {
		if err := validate.Range("width", w, 0, MaxImageWidth); err != nil {
			return nil, err
		}
	}
	if h, ok := b.height.Get(); ok {
		if err := validate.Range("height", h, 0, MaxImageHeight); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Finalize converts the dimensions to text and constructs the Image.
func (b *ImageBuilder) Finalize() (Image, error) {
	width, err := dimension("width", b.width)
	if err != nil {
		return Image{}, err
	}
	height, err := dimension("height", b.height)
	if err != nil {
		return Image{}, err
	}

	return Image{
		url:         b.url,
		link:        b.link,
		title:       b.title,
		width:       width,
		height:      height,
		description: b.description,
	}, nil
}

// Build validates the builder and then finalizes it.
func (b *ImageBuilder) Build() (Image, error) {
	if _, err := b.Validate(); err != nil {
		return Image{}, err
	}
	return b.Finalize()
}

func dimension(field string, v optional.Value[int64]) (optional.Value[string], error) {
	n, ok := v.Get()
	if !ok {
		return optional.None[string](), nil
	}
	s, err := stringutil.Int64ToString(n)
	if err != nil {
		return optional.None[string](), validate.Nested(field, err)
	}
	return optional.Some(s), nil
}

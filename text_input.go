package rssfeed

import "github.com/jdziat/rssfeed/internal/validate"

// TextInput is an immutable <textInput> element describing a text box that
// can be displayed with the channel.
type TextInput struct {
	title       string
	description string
	name        string
	link        string
}

// Title returns the label of the submit button.
func (t TextInput) Title() string {
	return t.title
}

// Description returns the explanation of the text box.
func (t TextInput) Description() string {
	return t.description
}

// Name returns the name of the text object.
func (t TextInput) Name() string {
	return t.name
}

// Link returns the URL of the script processing the request.
func (t TextInput) Link() string {
	return t.link
}

// TextInputBuilder configures a TextInput.
type TextInputBuilder struct {
	title       string
	description string
	name        string
	link        string
}

// NewTextInputBuilder returns a builder with every field unset.
func NewTextInputBuilder() *TextInputBuilder {
	return &TextInputBuilder{}
}

// Title sets the text input title.
func (b *TextInputBuilder) Title(title string) *TextInputBuilder {
	b.title = title
	return b
}

// Description sets the text input description.
func (b *TextInputBuilder) Description(description string) *TextInputBuilder {
	b.description = description
	return b
}

// Name sets the text input name.
func (b *TextInputBuilder) Name(name string) *TextInputBuilder {
	b.name = name
	return b
}

// Link sets the text input link.
func (b *TextInputBuilder) Link(link string) *TextInputBuilder {
	b.link = link
	return b
}

// Validate checks that the link is a valid URL.
func (b *TextInputBuilder) Validate() (*TextInputBuilder, error) {
	if err := validate.URL("link", b.link); err != nil {
		return nil, err
	}
	return b, nil
}

// Finalize constructs the TextInput.
func (b *TextInputBuilder) Finalize() (TextInput, error) {
	return TextInput{
		title:       b.title,
		description: b.description,
		name:        b.name,
		link:        b.link,
	}, nil
}

// Build validates the builder and then finalizes it.
func (b *TextInputBuilder) Build() (TextInput, error) {
	if _, err := b.Validate(); err != nil {
		return TextInput{}, err
	}
	return b.Finalize()
}

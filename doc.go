// Package rssfeed builds and reads RSS 2.0 feed data through validated,
// immutable values.
//
// Every feed element has a builder. Setters store raw values verbatim and
// return the builder for chaining, Validate checks the element's constraints
// and Finalize produces an immutable value:
//
//	b := rssfeed.NewCloudBuilder().
//	    Domain("http://rpc.sys.com/").
//	    Port(80).
//	    Path("/RPC2").
//	    RegisterProcedure("pingMe").
//	    Protocol("soap")
//
//	if _, err := b.Validate(); err != nil {
//	    return err
//	}
//	cloud, err := b.Finalize()
//
// Build runs both steps. Finalize on its own performs only the conversions it
// needs (integers to their decimal text), so a builder that skipped Validate
// may yield a value that breaks a feed constraint.
//
// # Composition
//
// ChannelBuilder and ItemBuilder take leaf elements that are already
// finalized. A channel is assembled bottom-up:
//
//	guid, _ := rssfeed.NewGuidBuilder().Value("http://example.com/ep1").Build()
//	item, _ := rssfeed.NewItemBuilder().Title("Episode 1").Guid(guid).Build()
//	channel, err := rssfeed.NewChannelBuilder().
//	    Title("Example").
//	    Link("http://example.com/").
//	    Description("An example feed").
//	    AddItem(item).
//	    Build()
//
// # Reading values
//
// Required fields are returned directly, optional fields with the comma-ok
// idiom and lists as fresh slices that are never nil:
//
//	if lang, ok := channel.Language(); ok {
//	    fmt.Println(lang)
//	}
//	for _, item := range channel.Items() {
//	    ...
//	}
//
// # Errors
//
// Validation is fail-fast: the first violated constraint is returned as a
// *ValidationError naming the field. Its cause can be matched with errors.Is
// against ErrInvalidURL, ErrInvalidMimeType, ErrNegativeValue, ErrOutOfRange,
// ErrInvalidDate and ErrMissingField.
//
// # Thread Safety
//
// Builders are NOT safe for concurrent use. Finalized values are immutable
// and may be shared between goroutines.
//
// Parsing RSS documents into these values lives in pkg/importer, writing them
// back out in pkg/rssxml.
package rssfeed

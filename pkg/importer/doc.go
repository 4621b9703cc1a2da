// Package importer turns RSS 2.0 documents into validated rssfeed values.
//
// Raw documents are parsed with github.com/mmcdole/gofeed and every element
// is passed through the matching rssfeed builder, so an imported Channel obeys
// the same rules as one built by hand.
//
// # Strict and lenient imports
//
// By default an import is lenient: an optional element that fails validation
// (a category, an enclosure, an image, a whole item, ...) is dropped, logged
// and counted, and the rest of the channel is kept. WithStrict(true) turns the
// first failure into the returned error instead. Errors on the channel's own
// required fields (title, link, description) always fail the import.
//
//	imp := importer.New(
//	    importer.WithLogger(rssfeed.NewSlogAdapter(slog.Default())),
//	    importer.WithSanitizer(sanitize.New()),
//	)
//	res, err := imp.Import(f)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Channel.Title(), res.Stats.ItemsSkipped)
package importer

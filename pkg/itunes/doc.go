// Package itunes builds the iTunes podcast extension elements
// (xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd") attached to
// RSS channels and items.
//
// The builders follow the same staged protocol as the rssfeed core: chained
// setters store raw values, Validate checks them and Finalize produces an
// immutable value. Almost every field is a free-form optional string; the
// checks are limited to URL-typed fields and non-empty category text.
//
//	owner, _ := itunes.NewOwnerBuilder().Name("Chris Fisher").Email("chris@example.com").Build()
//	tech, _ := itunes.NewCategoryBuilder().Text("Technology").Build()
//	ext, err := itunes.NewChannelExtensionBuilder().
//	    Author("Jupiter Broadcasting").
//	    Owner(owner).
//	    Categories([]itunes.Category{tech}).
//	    Build()
package itunes

// Namespace is the XML namespace URI of the iTunes podcast extension.
const Namespace = "http://www.itunes.com/dtds/podcast-1.0.dtd"

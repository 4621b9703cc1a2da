package importer

import (
	"github.com/jdziat/rssfeed"
	"github.com/jdziat/rssfeed/pkg/config"
	"github.com/jdziat/rssfeed/pkg/sanitize"
)

// Option configures an Importer.
type Option func(*Importer)

// WithLogger sets the logger used to report skipped elements.
func WithLogger(logger rssfeed.StructuredLogger) Option {
	return func(i *Importer) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(metrics rssfeed.Metrics) Option {
	return func(i *Importer) {
		if metrics != nil {
			i.metrics = metrics
		}
	}
}

// WithStrict makes the first invalid element fail the import.
func WithStrict(strict bool) Option {
	return func(i *Importer) {
		i.strict = strict
	}
}

// WithSanitizer cleans channel and item descriptions with s. A nil s
// disables sanitizing.
func WithSanitizer(s *sanitize.Sanitizer) Option {
	return func(i *Importer) {
		i.sanitizer = s
	}
}

// WithGeneratedGUIDs gives items without a guid a name-based UUID derived
// from their link and title.
func WithGeneratedGUIDs(enabled bool) Option {
	return func(i *Importer) {
		i.generateGUIDs = enabled
	}
}

// WithOptions applies settings loaded by the config package.
func WithOptions(o config.Options) Option {
	return func(i *Importer) {
		i.strict = o.Strict
		i.generateGUIDs = o.GenerateGUIDs
		switch {
		case !o.Sanitize:
			i.sanitizer = nil
		case o.SanitizePolicy == config.SanitizeStrict:
			i.sanitizer = sanitize.Strict()
		default:
			i.sanitizer = sanitize.New()
		}
	}
}

// Package config holds the import settings shared by the feedcheck command and
// library users that configure the importer from the environment.
package config

import "fmt"

// SanitizePolicy selects how HTML in descriptions is cleaned.
type SanitizePolicy string

const (
	// SanitizeDefault keeps basic formatting, links and images.
	SanitizeDefault SanitizePolicy = "default"
	// SanitizeStrict removes every tag.
	SanitizeStrict SanitizePolicy = "strict"
)

// String returns the string representation of the policy.
func (p SanitizePolicy) String() string {
	return string(p)
}

// Valid reports whether p is a known policy.
func (p SanitizePolicy) Valid() bool {
	return p == SanitizeDefault || p == SanitizeStrict
}

// Options configures how feeds are imported.
type Options struct {
	// Strict aborts an import on the first invalid element instead of
	// skipping it.
	Strict bool `yaml:"strict"`

	// Sanitize cleans channel and item descriptions.
	Sanitize bool `yaml:"sanitize"`

	// SanitizePolicy is used when Sanitize is true.
	SanitizePolicy SanitizePolicy `yaml:"sanitize_policy"`

	// GenerateGUIDs gives items without a guid a stable name-based one.
	GenerateGUIDs bool `yaml:"generate_guids"`

	// Debug enables debug logging.
	Debug bool `yaml:"debug"`
}

// DefaultOptions returns lenient import settings with sanitizing enabled.
func DefaultOptions() Options {
	return Options{
		Strict:         false,
		Sanitize:       true,
		SanitizePolicy: SanitizeDefault,
		GenerateGUIDs:  false,
		Debug:          false,
	}
}

// Validate checks the option values.
func (o Options) Validate() error {
	if o.Sanitize && !o.SanitizePolicy.Valid() {
		return fmt.Errorf("config: unknown sanitize policy %q (want %q or %q)", o.SanitizePolicy, SanitizeDefault, SanitizeStrict)
	}
	return nil
}

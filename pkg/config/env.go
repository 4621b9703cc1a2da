package config

import (
	"os"
	"strings"
)

// Environment variable names for configuration.
const (
	EnvStrict         = "RSSFEED_STRICT"
	EnvSanitize       = "RSSFEED_SANITIZE"
	EnvSanitizePolicy = "RSSFEED_SANITIZE_POLICY"
	EnvGenerateGUIDs  = "RSSFEED_GENERATE_GUIDS"
	EnvDebug          = "RSSFEED_DEBUG"
)

// GetEnvString returns the value of an environment variable or a default.
func GetEnvString(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// LookupEnvBool reports the boolean value of key and whether it was set to a
// recognised value. "true", "1", "yes" and "on" are true; "false", "0", "no"
// and "off" are false. Matching ignores case.
func LookupEnvBool(key string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "true", "1", "yes", "on":
		return true, true
	case "false", "0", "no", "off":
		return false, true
	default:
		return false, false
	}
}

// FromEnv returns DefaultOptions with environment overrides applied.
func FromEnv() Options {
	o := DefaultOptions()
	ApplyEnv(&o)
	return o
}

// ApplyEnv overrides the fields of o whose environment variables are set.
// Unset or unrecognised values leave o untouched.
func ApplyEnv(o *Options) {
	if v, ok := LookupEnvBool(EnvStrict); ok {
		o.Strict = v
	}
	if v, ok := LookupEnvBool(EnvSanitize); ok {
		o.Sanitize = v
	}
	if v := GetEnvString(EnvSanitizePolicy, ""); v != "" {
		o.SanitizePolicy = SanitizePolicy(strings.ToLower(v))
	}
	if v, ok := LookupEnvBool(EnvGenerateGUIDs); ok {
		o.GenerateGUIDs = v
	}
	if v, ok := LookupEnvBool(EnvDebug); ok {
		o.Debug = v
	}
}

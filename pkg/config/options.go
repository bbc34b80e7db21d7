package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptInputDir sets the directory with input TSV files.
func OptInputDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Directory", s) {
			c.InputDir = s
		}
	}
}

// OptOutputDir sets the directory for result files.
func OptOutputDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Directory", s) {
			c.OutputDir = s
		}
	}
}

// OptVernacularLanguage sets the language of kept common names.
// Language codes are compared exactly, so the value is not lowercased.
func OptVernacularLanguage(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Vernacular Language", s) {
			c.VernacularLanguage = s
		}
	}
}

// OptCompress sets creation of gzipped copies of JSON files.
func OptCompress(b bool) Option {
	return func(c *Config) {
		c.Compress = b
	}
}

// OptWithSQLite sets export of results to SQLite.
func OptWithSQLite(b bool) Option {
	return func(c *Config) {
		c.WithSQLite = b
	}
}

// OptWithProgress sets visibility of the progress bar.
func OptWithProgress(b bool) Option {
	return func(c *Config) {
		c.WithProgress = b
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}

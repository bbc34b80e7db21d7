// Package config provides configuration management for GNmoth.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Input/output: input_dir, output_dir
//   - Build: vernacular_language, compress, with_sqlite, with_progress
//   - Log: level, format, destination
//
// Runtime-only fields:
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNMOTH_ prefix with underscores for nesting:
//
//	GNMOTH_INPUT_DIR=/data/col
//	GNMOTH_OUTPUT_DIR=/data/moths
//	GNMOTH_VERNACULAR_LANGUAGE=eng
//	GNMOTH_LOG_LEVEL=info
package config

// Config represents the complete GNmoth configuration.
type Config struct {
	// InputDir is the directory with Taxon.tsv, VernacularName.tsv,
	// SpeciesProfile.tsv and Distribution.tsv files.
	InputDir string `mapstructure:"input_dir" yaml:"input_dir"`

	// OutputDir is the directory where result files are saved.
	// It is created if it does not exist.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`

	// VernacularLanguage is the language code of common names that are
	// kept in the output. Other languages are ignored.
	VernacularLanguage string `mapstructure:"vernacular_language" yaml:"vernacular_language"`

	// Compress is true if gzipped copies of JSON files are created.
	Compress bool `mapstructure:"compress" yaml:"compress"`

	// WithSQLite is true if results are also exported to a SQLite file.
	WithSQLite bool `mapstructure:"with_sqlite" yaml:"with_sqlite"`

	// WithProgress shows a progress bar while the Taxon table is read.
	WithProgress bool `mapstructure:"with_progress" yaml:"with_progress"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		InputDir:           ".",
		OutputDir:          "output",
		VernacularLanguage: "eng",
		WithProgress:       true,
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}

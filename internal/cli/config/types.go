// Package config provides configuration management for the sqldialect CLI.
//
// Values are layered from built-in defaults, an optional sqldialect.yaml,
// SQLDIALECT_* environment variables and explicitly set command-line flags,
// in increasing order of precedence.
package config

// Config holds all CLI configuration options.
type Config struct {
	Dialect     string `koanf:"dialect"`
	Output      string `koanf:"output"`
	Verbose     bool   `koanf:"verbose"`
	LogLevel    string `koanf:"log_level"`
	HistoryFile string `koanf:"history_file"`
	Workers     int    `koanf:"workers"`
}

// Default configuration values
const (
	DefaultDialect  = "generic"
	DefaultOutput   = "auto" // Auto-detect: TTY=styled text, non-TTY=plain text
	DefaultLogLevel = "warn"
	DefaultWorkers  = 4
	DefaultHistory  = ".sqldialect_history"
)

// Default returns a Config populated with the default values.
func Default() *Config {
	return &Config{
		Dialect:  DefaultDialect,
		Output:   DefaultOutput,
		LogLevel: DefaultLogLevel,
		Workers:  DefaultWorkers,
	}
}

// ConfigFileNames lists the file names searched for, in order.
var ConfigFileNames = []string{"sqldialect.yaml", "sqldialect.yml"}

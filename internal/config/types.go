package config

// Default values.
const (
	DefaultStoreFile = "tasks.json"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds the full configuration for task-cli.
type Config struct {
	// Path of the JSON task file
	StoreFile string `toml:"store_file"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Working directory relative paths are resolved against (computed)
	WorkDir string `toml:"-"`

	// Config files that were applied, lowest priority first (computed)
	Files []string `toml:"-"`
}

// setDefaults fills cfg with built-in defaults.
func setDefaults(cfg *Config) {
	cfg.StoreFile = DefaultStoreFile
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
	cfg.LogCaller = false
}

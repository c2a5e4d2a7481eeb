// Package config handles configuration for the notekeeper CLI,
// including defaults, JSON overlay, environment variables, and
// command-line flags.
package config

import "log/slog"

// Config holds runtime settings for the notekeeper CLI.
//
// Fields:
//   - DatabaseDSN: path/DSN of the local SQLite database backing the
//     key-value store.
//   - LogLevel: minimal log level (debug, info, warn, error).
type Config struct {
	DatabaseDSN string `env:"DATABASE_DSN"`
	LogLevel    string `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "notekeeper.db"
	c.LogLevel = "info"
}

// SlogLevel maps the configured level string to a slog.Level.
// Unknown values fall back to Info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

package config

import "time"

// Config holds runtime settings for the MoodKeeper CLI.
//
// Fields:
//   - DatabasePath: path of the local SQLite file holding all records.
//   - LogLevel: minimum log level ("debug", "info", "warn", "error").
//   - ReminderDefaultInterval: offset from now used when a reminder is set
//     without an explicit time.
type Config struct {
	DatabasePath            string
	LogLevel                string
	ReminderDefaultInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "moodkeeper.db"
	c.LogLevel = "info"
	c.ReminderDefaultInterval = 1 * time.Hour
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

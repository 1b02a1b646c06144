package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/evlasova/moodkeeper/internal/flagx"
	"github.com/evlasova/moodkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. After parsing,
// non-empty values are copied into the runtime Config. Interval fields use
// timex.Duration, which accepts both strings like "1h" and integer
// nanoseconds.
type JsonConfig struct {
	DatabasePath            string         `json:"database_path"`
	LogLevel                string         `json:"log_level"`
	ReminderDefaultInterval timex.Duration `json:"reminder_default_interval"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags via flagx.JsonConfigFlags; if no path
// is given, nothing is loaded. Read or unmarshal errors panic (caller should
// recover if desired). Intended usage is: defaults -> parseJson ->
// parseFlags, where later stages override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.ReminderDefaultInterval.Duration != 0 {
		cfg.ReminderDefaultInterval = time.Duration(jc.ReminderDefaultInterval.Duration)
	}
}

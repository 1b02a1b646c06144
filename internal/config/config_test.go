package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	oldArgs := os.Args
	os.Args = append([]string{"cmd"}, args...)
	t.Cleanup(func() { os.Args = oldArgs })
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()

	assert.Equal(t, "moodkeeper.db", cfg.DatabasePath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 1*time.Hour, cfg.ReminderDefaultInterval)
}

func TestLoadConfig_JsonOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_path":"from-json.db","log_level":"debug","reminder_default_interval":"90m"}`), 0o600))

	withArgs(t, "-c", path)

	cfg := LoadConfig()

	assert.Equal(t, "from-json.db", cfg.DatabasePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 90*time.Minute, cfg.ReminderDefaultInterval)
}

func TestLoadConfig_FlagsOverrideJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_path":"from-json.db","reminder_default_interval":"1h"}`), 0o600))

	withArgs(t, "-c", path, "-d", "from-flag.db", "-r", "45")

	cfg := LoadConfig()

	assert.Equal(t, "from-flag.db", cfg.DatabasePath)
	assert.Equal(t, 45*time.Minute, cfg.ReminderDefaultInterval)
}

func TestLoadConfig_PartialJsonKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"log_level":"warn"}`), 0o600))

	withArgs(t, "-c", path)

	cfg := LoadConfig()

	assert.Equal(t, "moodkeeper.db", cfg.DatabasePath)
	assert.Equal(t, "warn", cfg.LogLevel)
}

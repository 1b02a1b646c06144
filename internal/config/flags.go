package config

import (
	"flag"
	"os"
	"time"

	"github.com/evlasova/moodkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the local database file (default from Config)
//	-l string   log level: debug|info|warn|error (default from Config)
//	-r int      default reminder interval in minutes (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")
	reminderInterval := fs.Int("r", int(cfg.ReminderDefaultInterval.Minutes()), "default reminder interval (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ReminderDefaultInterval = time.Duration(*reminderInterval) * time.Minute
}

// Package cli is the interactive REPL shell of MoodKeeper. It only wires
// input and output to the service layer; all business rules live below it.
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/evlasova/moodkeeper/internal/config"
	"github.com/evlasova/moodkeeper/internal/logging"
	"github.com/evlasova/moodkeeper/internal/services"
	"github.com/evlasova/moodkeeper/internal/store"
)

type App struct {
	config    *config.Config
	log       logging.Logger
	store     *store.Store
	journal   services.JournalService
	analysis  services.AnalysisService
	reminders services.ReminderService
	answers   services.AnswerService
	reader    *bufio.Reader
}

func newLogger(level string) logging.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})
	return logging.NewSlogLogger(slog.New(h))
}

// NewApp opens the record store and wires the services. A store that cannot
// be opened is a fatal condition; the caller aborts startup.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := newLogger(c.LogLevel)

	st, err := store.Open(ctx, c.DatabasePath, log)
	if err != nil {
		log.Error(ctx, "error initializing record store", "error", err)
		return nil, err
	}

	return &App{
		config:    c,
		log:       log,
		store:     st,
		journal:   services.NewJournalService(st, log),
		analysis:  services.NewAnalysisService(st, log),
		reminders: services.NewReminderService(st),
		answers:   services.NewAnswerService(st),
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.store.Close()
	a.Root(ctx)
}

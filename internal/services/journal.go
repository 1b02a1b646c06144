// Package services contains the stateless orchestration layer between the
// record store and the UI: journal statistics, weekly analytics and the thin
// reminder/answer wrappers. Services hold no state of their own; every
// result is derived from a store fetch.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/evlasova/moodkeeper/internal/logging"
	"github.com/evlasova/moodkeeper/internal/models"
	"github.com/evlasova/moodkeeper/internal/timex"
	"github.com/google/uuid"
)

// JournalStore is the slice of the record store the journal service needs.
type JournalStore interface {
	FetchAllJournal(ctx context.Context, order models.SortOrder) ([]models.JournalRecord, error)
	SaveJournal(ctx context.Context, rec models.JournalRecord) error
	DeleteJournal(ctx context.Context, id string) error
}

// JournalService orchestrates record store calls into user-meaningful
// journal results.
type JournalService interface {
	// FetchRecords returns all entries, newest first.
	FetchRecords(ctx context.Context) ([]models.JournalEntry, error)

	// SaveRecord upserts an entry. A missing id or creation time is filled
	// in before the save.
	SaveRecord(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error)

	// DeleteRecord removes an entry; absent ids are a no-op.
	DeleteRecord(ctx context.Context, id string) error

	// FetchStatistics computes totals and the backward streak. A store
	// failure degrades to all-zero statistics instead of an error.
	FetchStatistics(ctx context.Context) models.JournalStatistics

	// FetchTodayEmotions returns the emotions of today's entries in fetch
	// order, duplicates preserved.
	FetchTodayEmotions(ctx context.Context) ([]models.Emotion, error)
}

type journalService struct {
	store JournalStore
	log   logging.Logger
	now   func() time.Time
}

// NewJournalService returns a JournalService over the given store.
func NewJournalService(store JournalStore, log logging.Logger) JournalService {
	return &journalService{store: store, log: log, now: time.Now}
}

// decodeRecords maps transfer records into domain entries. A record with an
// unknown emotion tag is dropped and logged; one corrupt row must not fail
// the whole fetch.
func decodeRecords(ctx context.Context, log logging.Logger, recs []models.JournalRecord) []models.JournalEntry {
	entries := make([]models.JournalEntry, 0, len(recs))
	for _, rec := range recs {
		entry, err := models.EntryFromRecord(rec)
		if err != nil {
			log.Warn(ctx, "skipping corrupt journal record", "id", rec.ID, "error", err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

func (s *journalService) FetchRecords(ctx context.Context) ([]models.JournalEntry, error) {
	recs, err := s.store.FetchAllJournal(ctx, models.OrderDescending)
	if err != nil {
		return nil, fmt.Errorf("error retrieving journal records: %w", err)
	}
	return decodeRecords(ctx, s.log, recs), nil
}

func (s *journalService) SaveRecord(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}

	if err := s.store.SaveJournal(ctx, entry.Record()); err != nil {
		return models.JournalEntry{}, fmt.Errorf("error saving journal record: %w", err)
	}
	return entry, nil
}

func (s *journalService) DeleteRecord(ctx context.Context, id string) error {
	if err := s.store.DeleteJournal(ctx, id); err != nil {
		return fmt.Errorf("error deleting journal record: %w", err)
	}
	return nil
}

func (s *journalService) FetchStatistics(ctx context.Context) models.JournalStatistics {
	recs, err := s.store.FetchAllJournal(ctx, models.OrderDescending)
	if err != nil {
		// Degrade to zero statistics so the home screen always renders.
		// Callers cannot tell "no entries" from "store failed" here; the
		// analysis service makes the opposite choice and propagates.
		s.log.Error(ctx, "failed to fetch journal statistics", "error", err)
		return models.JournalStatistics{}
	}

	entries := decodeRecords(ctx, s.log, recs)

	now := s.now()
	loc := now.Location()
	today := timex.NormalizeDay(now)

	days := make(map[time.Time]struct{}, len(entries))
	todayCount := 0
	for _, e := range entries {
		day := timex.NormalizeDay(e.CreatedAt.In(loc))
		days[day] = struct{}{}
		if day.Equal(today) {
			todayCount++
		}
	}

	// Walk backward from today; the streak breaks at the first empty day,
	// which may be today itself.
	streak := 0
	for d := today; ; d = d.AddDate(0, 0, -1) {
		if _, ok := days[d]; !ok {
			break
		}
		streak++
	}

	return models.JournalStatistics{
		Total:  len(entries),
		Today:  todayCount,
		Streak: streak,
	}
}

func (s *journalService) FetchTodayEmotions(ctx context.Context) ([]models.Emotion, error) {
	recs, err := s.store.FetchAllJournal(ctx, models.OrderDescending)
	if err != nil {
		return nil, fmt.Errorf("error retrieving journal records: %w", err)
	}

	now := s.now()

	emotions := make([]models.Emotion, 0)
	for _, e := range decodeRecords(ctx, s.log, recs) {
		if timex.SameDay(now, e.CreatedAt) {
			emotions = append(emotions, e.Emotion)
		}
	}
	return emotions, nil
}

package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/evlasova/moodkeeper/internal/logging"
	"github.com/evlasova/moodkeeper/internal/models"
	"github.com/evlasova/moodkeeper/internal/timex"
)

// AnalyticsStore is the slice of the record store the analysis service needs.
type AnalyticsStore interface {
	FetchAllJournal(ctx context.Context, order models.SortOrder) ([]models.JournalRecord, error)
}

// AnalysisService computes week-bucketed analytics over the journal. Unlike
// the journal statistics path, store failures propagate to the caller: a
// thrown error means "data temporarily unavailable", never "no data exists".
type AnalysisService interface {
	// FetchWeeklyData computes analytics for the Monday-first calendar week
	// containing reference.
	FetchWeeklyData(ctx context.Context, reference time.Time) (models.AnalyticsWeek, error)

	// FetchAllWeeks enumerates every week interval from the current one back
	// to the week of the earliest entry, most recent first. An empty store
	// yields an empty slice.
	FetchAllWeeks(ctx context.Context) ([]models.WeekInterval, error)
}

type analysisService struct {
	store AnalyticsStore
	log   logging.Logger
	now   func() time.Time
}

// NewAnalysisService returns an AnalysisService over the given store.
func NewAnalysisService(store AnalyticsStore, log logging.Logger) AnalysisService {
	return &analysisService{store: store, log: log, now: time.Now}
}

func (s *analysisService) FetchWeeklyData(ctx context.Context, reference time.Time) (models.AnalyticsWeek, error) {
	recs, err := s.store.FetchAllJournal(ctx, models.OrderAscending)
	if err != nil {
		return models.AnalyticsWeek{}, fmt.Errorf("error retrieving journal records: %w", err)
	}

	loc := reference.Location()
	start, end := timex.WeekOf(reference)

	week := models.AnalyticsWeek{
		Interval:      models.WeekInterval{Start: start, End: end},
		DailyEmotions: make(map[time.Time][]models.JournalEntry, 7),
	}
	// All 7 day keys are always present, empty or not: the calendar UI
	// renders every day of the week.
	for i := 0; i < 7; i++ {
		week.DailyEmotions[start.AddDate(0, 0, i)] = []models.JournalEntry{}
	}

	var inWeek []models.JournalEntry
	for _, e := range decodeRecords(ctx, s.log, recs) {
		ts := e.CreatedAt.In(loc)
		if !week.Interval.Contains(ts) {
			continue
		}
		day := timex.NormalizeDay(ts)
		week.DailyEmotions[day] = append(week.DailyEmotions[day], e)
		inWeek = append(inWeek, e)
	}

	week.MostFrequentEmotions = rankEmotions(inWeek)
	week.TimeOfDayMoods = timeOfDayShares(inWeek, loc)
	return week, nil
}

func (s *analysisService) FetchAllWeeks(ctx context.Context) ([]models.WeekInterval, error) {
	recs, err := s.store.FetchAllJournal(ctx, models.OrderAscending)
	if err != nil {
		return nil, fmt.Errorf("error retrieving journal records: %w", err)
	}
	if len(recs) == 0 {
		return []models.WeekInterval{}, nil
	}

	now := s.now()
	earliest := recs[0].CreatedAt.In(now.Location())

	var weeks []models.WeekInterval
	for cursor := now; ; cursor = cursor.AddDate(0, 0, -7) {
		start, end := timex.WeekOf(cursor)
		weeks = append(weeks, models.WeekInterval{Start: start, End: end})
		if !start.After(earliest) {
			// reached the week containing the earliest entry
			break
		}
	}
	return weeks, nil
}

// rankEmotions counts emotion occurrences and sorts them by descending
// count. Ties keep encounter order: the sort is stable and the input slice
// is built in first-seen order.
func rankEmotions(entries []models.JournalEntry) []models.EmotionCount {
	counts := make(map[models.Emotion]int, len(entries))
	order := make([]models.Emotion, 0, len(entries))
	for _, e := range entries {
		if counts[e.Emotion] == 0 {
			order = append(order, e.Emotion)
		}
		counts[e.Emotion]++
	}

	ranked := make([]models.EmotionCount, 0, len(order))
	for _, em := range order {
		ranked = append(ranked, models.EmotionCount{Emotion: em, Count: counts[em]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// timeOfDayShares groups entries into hour-of-day buckets and converts each
// bucket's emotion counts to fractions of that bucket's total. Buckets with
// no entries are left out of the map entirely; this is deliberately
// asymmetric with the always-7-key daily map.
func timeOfDayShares(entries []models.JournalEntry, loc *time.Location) map[models.TimeOfDay][]models.EmotionShare {
	grouped := make(map[models.TimeOfDay][]models.JournalEntry)
	for _, e := range entries {
		bucket := models.BucketForHour(e.CreatedAt.In(loc).Hour())
		grouped[bucket] = append(grouped[bucket], e)
	}

	moods := make(map[models.TimeOfDay][]models.EmotionShare, len(grouped))
	for bucket, es := range grouped {
		counts := make(map[models.Emotion]int, len(es))
		order := make([]models.Emotion, 0, len(es))
		for _, e := range es {
			if counts[e.Emotion] == 0 {
				order = append(order, e.Emotion)
			}
			counts[e.Emotion]++
		}

		total := float64(len(es))
		shares := make([]models.EmotionShare, 0, len(order))
		for _, em := range order {
			shares = append(shares, models.EmotionShare{
				Emotion: em,
				Share:   float64(counts[em]) / total,
			})
		}
		moods[bucket] = shares
	}
	return moods
}

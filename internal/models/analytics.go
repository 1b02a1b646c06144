package models

import "time"

// WeekInterval is a half-open 7-day interval [Start, End) aligned to the
// Monday-first calendar week.
type WeekInterval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the interval.
func (w WeekInterval) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// TimeOfDay is one of five fixed hour-of-day buckets used to classify
// entries for mood-by-time-of-day analytics.
type TimeOfDay string

const (
	TimeOfDayEarlyMorning TimeOfDay = "early_morning" // 05:00–07:59
	TimeOfDayMorning      TimeOfDay = "morning"       // 08:00–11:59
	TimeOfDayDay          TimeOfDay = "day"           // 12:00–16:59
	TimeOfDayEvening      TimeOfDay = "evening"       // 17:00–20:59
	TimeOfDayLateEvening  TimeOfDay = "late_evening"  // 21:00–04:59 (wraps midnight)
)

// BucketForHour classifies an hour of day (0..23) into its TimeOfDay bucket.
func BucketForHour(hour int) TimeOfDay {
	switch {
	case hour >= 5 && hour <= 7:
		return TimeOfDayEarlyMorning
	case hour >= 8 && hour <= 11:
		return TimeOfDayMorning
	case hour >= 12 && hour <= 16:
		return TimeOfDayDay
	case hour >= 17 && hour <= 20:
		return TimeOfDayEvening
	default:
		return TimeOfDayLateEvening
	}
}

// EmotionCount is a ranked (emotion, occurrences) pair.
type EmotionCount struct {
	Emotion Emotion
	Count   int
}

// EmotionShare is an emotion's fraction of its time-of-day bucket. Shares
// within one bucket sum to 1.
type EmotionShare struct {
	Emotion Emotion
	Share   float64
}

// AnalyticsWeek is the derived analytics for one calendar week. It is never
// persisted.
//
// DailyEmotions always holds exactly 7 keys (the normalized days of the
// week), each mapping to the day's entries, possibly empty — the calendar UI
// renders every day. TimeOfDayMoods, by contrast, omits buckets with no
// entries that week entirely; the two maps are deliberately asymmetric.
type AnalyticsWeek struct {
	Interval             WeekInterval
	DailyEmotions        map[time.Time][]JournalEntry
	MostFrequentEmotions []EmotionCount
	TimeOfDayMoods       map[TimeOfDay][]EmotionShare
}

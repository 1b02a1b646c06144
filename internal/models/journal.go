package models

import "time"

// SortOrder selects an ordering for fetch-all operations. OrderUnspecified
// leaves the order implementation-chosen; callers needing a guarantee must
// ask for one explicitly.
type SortOrder int

const (
	OrderUnspecified SortOrder = iota
	OrderAscending
	OrderDescending
)

// JournalRecord is the flat transfer shape of a journal entry, exactly as it
// is persisted. Emotion is the raw string; answers are never null, empty
// string means "no answer".
type JournalRecord struct {
	ID          string
	Emotion     string
	AnswerOne   string
	AnswerTwo   string
	AnswerThree string
	CreatedAt   time.Time
}

// JournalEntry is the in-memory domain value of a single journal record.
// ID is immutable and unique across the store; saving an entry with an
// existing id replaces the stored record wholesale.
type JournalEntry struct {
	ID          string
	Emotion     Emotion
	AnswerOne   string
	AnswerTwo   string
	AnswerThree string
	CreatedAt   time.Time
}

// EntryFromRecord maps a transfer record into a domain entry. The only
// fallible step is parsing the emotion tag; everything else is copied
// verbatim.
func EntryFromRecord(r JournalRecord) (JournalEntry, error) {
	emotion, err := ParseEmotion(r.Emotion)
	if err != nil {
		return JournalEntry{}, err
	}
	return JournalEntry{
		ID:          r.ID,
		Emotion:     emotion,
		AnswerOne:   r.AnswerOne,
		AnswerTwo:   r.AnswerTwo,
		AnswerThree: r.AnswerThree,
		CreatedAt:   r.CreatedAt,
	}, nil
}

// Record maps the domain entry back to its transfer shape. The round trip
// through EntryFromRecord is lossless.
func (e JournalEntry) Record() JournalRecord {
	return JournalRecord{
		ID:          e.ID,
		Emotion:     string(e.Emotion),
		AnswerOne:   e.AnswerOne,
		AnswerTwo:   e.AnswerTwo,
		AnswerThree: e.AnswerThree,
		CreatedAt:   e.CreatedAt,
	}
}

// JournalStatistics is a derived summary over all journal entries. Streak is
// the count of consecutive calendar days with at least one entry, walking
// backward from today; it is 0 when today has no entries.
type JournalStatistics struct {
	Total  int
	Today  int
	Streak int
}

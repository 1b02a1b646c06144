package services

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"testing"

	"github.com/evlasova/moodkeeper/internal/logging"
	"github.com/evlasova/moodkeeper/internal/models"
)

// fakeStore is an in-memory stand-in for the record store. Setting err makes
// every operation fail with it, which is how the error-policy tests inject
// store failures.
type fakeStore struct {
	err       error
	records   []models.JournalRecord
	reminders []models.ReminderTime
	answers   map[int][]models.QuestionAnswerOption
}

func newFakeStore() *fakeStore {
	return &fakeStore{answers: make(map[int][]models.QuestionAnswerOption)}
}

func (f *fakeStore) FetchAllJournal(_ context.Context, order models.SortOrder) ([]models.JournalRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.JournalRecord, len(f.records))
	copy(out, f.records)
	switch order {
	case models.OrderAscending:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	case models.OrderDescending:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out, nil
}

func (f *fakeStore) SaveJournal(_ context.Context, rec models.JournalRecord) error {
	if f.err != nil {
		return f.err
	}
	for i, r := range f.records {
		if r.ID == rec.ID {
			f.records[i] = rec
			return nil
		}
	}
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeStore) DeleteJournal(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	for i, r := range f.records {
		if r.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeStore) FetchAllReminders(_ context.Context, order models.SortOrder) ([]models.ReminderTime, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.ReminderTime, len(f.reminders))
	copy(out, f.reminders)
	if order != models.OrderUnspecified {
		sort.SliceStable(out, func(i, j int) bool {
			if order == models.OrderDescending {
				return out[i].Time > out[j].Time
			}
			return out[i].Time < out[j].Time
		})
	}
	return out, nil
}

func (f *fakeStore) SaveReminder(_ context.Context, rem models.ReminderTime) error {
	if f.err != nil {
		return f.err
	}
	for i, r := range f.reminders {
		if r.ID == rem.ID {
			f.reminders[i] = rem
			return nil
		}
	}
	f.reminders = append(f.reminders, rem)
	return nil
}

func (f *fakeStore) DeleteReminder(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	for i, r := range f.reminders {
		if r.ID == id {
			f.reminders = append(f.reminders[:i], f.reminders[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeStore) DeleteAllReminders(_ context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.reminders = nil
	return nil
}

func (f *fakeStore) FetchAnswers(_ context.Context, questionIndex int) ([]models.QuestionAnswerOption, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.answers[questionIndex], nil
}

func (f *fakeStore) AddAnswer(_ context.Context, text string, questionIndex int) error {
	if f.err != nil {
		return f.err
	}
	for _, o := range f.answers[questionIndex] {
		if o.Answer == text {
			return nil
		}
	}
	f.answers[questionIndex] = append(f.answers[questionIndex], models.QuestionAnswerOption{
		ID: text, QuestionIndex: questionIndex, Answer: text,
	})
	return nil
}

func (f *fakeStore) DeleteAnswerByText(_ context.Context, text string, questionIndex int) error {
	if f.err != nil {
		return f.err
	}
	opts := f.answers[questionIndex]
	for i, o := range opts {
		if o.Answer == text {
			f.answers[questionIndex] = append(opts[:i], opts[i+1:]...)
			return nil
		}
	}
	return nil
}

func testLogger(t *testing.T) logging.Logger {
	t.Helper()
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

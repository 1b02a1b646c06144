package store

import (
	"context"

	"github.com/evlasova/moodkeeper/internal/dbx"
	"github.com/evlasova/moodkeeper/internal/models"
	"github.com/evlasova/moodkeeper/internal/repositories/reminders"
)

// FetchAllReminders returns all reminder times; an explicit order sorts them
// alphabetically by time string, which for "HH:mm" is chronological.
func (s *Store) FetchAllReminders(ctx context.Context, order models.SortOrder) ([]models.ReminderTime, error) {
	var rems []models.ReminderTime
	err := s.read(ctx, "fetch reminders", func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		rems, err = reminders.NewSQLiteRepository(tx).GetAll(ctx, order)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rems, nil
}

// FetchReminder returns one reminder, or nil if the id is absent.
func (s *Store) FetchReminder(ctx context.Context, id string) (*models.ReminderTime, error) {
	var rem *models.ReminderTime
	err := s.read(ctx, "fetch reminder", func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		rem, err = reminders.NewSQLiteRepository(tx).GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rem, nil
}

// SaveReminder upserts a reminder by id. The time string is persisted as
// given; format validation is the caller's responsibility.
func (s *Store) SaveReminder(ctx context.Context, rem models.ReminderTime) error {
	return s.write(ctx, "save reminder", func(ctx context.Context, tx dbx.DBTX) error {
		return reminders.NewSQLiteRepository(tx).CreateOrUpdate(ctx, &rem)
	})
}

// DeleteReminder removes a reminder; absent ids are a no-op.
func (s *Store) DeleteReminder(ctx context.Context, id string) error {
	return s.write(ctx, "delete reminder", func(ctx context.Context, tx dbx.DBTX) error {
		return reminders.NewSQLiteRepository(tx).DeleteByID(ctx, id)
	})
}

// DeleteAllReminders removes every reminder.
func (s *Store) DeleteAllReminders(ctx context.Context) error {
	return s.write(ctx, "delete all reminders", func(ctx context.Context, tx dbx.DBTX) error {
		return reminders.NewSQLiteRepository(tx).DeleteAll(ctx)
	})
}

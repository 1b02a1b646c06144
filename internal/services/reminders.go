package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evlasova/moodkeeper/internal/models"
	"github.com/google/uuid"
)

// ErrInvalidReminderTime is returned when a reminder time is not a
// two-digit "HH:mm" 24-hour string.
var ErrInvalidReminderTime = errors.New("invalid reminder time")

// ReminderStore is the slice of the record store the reminder service needs.
type ReminderStore interface {
	FetchAllReminders(ctx context.Context, order models.SortOrder) ([]models.ReminderTime, error)
	SaveReminder(ctx context.Context, rem models.ReminderTime) error
	DeleteReminder(ctx context.Context, id string) error
	DeleteAllReminders(ctx context.Context) error
}

// ReminderService manages daily reminder times. The store persists time
// strings as given, so format validation lives here, on the write path.
type ReminderService interface {
	// GetAll returns all reminders in chronological (alphabetical) order.
	GetAll(ctx context.Context) ([]models.ReminderTime, error)

	// Add validates timeOfDay ("HH:mm", 24-hour) and persists a new reminder.
	Add(ctx context.Context, timeOfDay string) (models.ReminderTime, error)

	// Remove deletes one reminder; absent ids are a no-op.
	Remove(ctx context.Context, id string) error

	// RemoveAll deletes every reminder.
	RemoveAll(ctx context.Context) error
}

type reminderService struct {
	store ReminderStore
}

// NewReminderService returns a ReminderService over the given store.
func NewReminderService(store ReminderStore) ReminderService {
	return &reminderService{store: store}
}

// validReminderTime requires exactly "HH:mm" with two-digit hour and minute.
func validReminderTime(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

func (s *reminderService) GetAll(ctx context.Context) ([]models.ReminderTime, error) {
	rems, err := s.store.FetchAllReminders(ctx, models.OrderAscending)
	if err != nil {
		return nil, fmt.Errorf("error retrieving reminders: %w", err)
	}
	return rems, nil
}

func (s *reminderService) Add(ctx context.Context, timeOfDay string) (models.ReminderTime, error) {
	if !validReminderTime(timeOfDay) {
		return models.ReminderTime{}, fmt.Errorf("%w: %q", ErrInvalidReminderTime, timeOfDay)
	}

	rem := models.ReminderTime{ID: uuid.NewString(), Time: timeOfDay}
	if err := s.store.SaveReminder(ctx, rem); err != nil {
		return models.ReminderTime{}, fmt.Errorf("error saving reminder: %w", err)
	}
	return rem, nil
}

func (s *reminderService) Remove(ctx context.Context, id string) error {
	if err := s.store.DeleteReminder(ctx, id); err != nil {
		return fmt.Errorf("error deleting reminder: %w", err)
	}
	return nil
}

func (s *reminderService) RemoveAll(ctx context.Context) error {
	if err := s.store.DeleteAllReminders(ctx); err != nil {
		return fmt.Errorf("error deleting reminders: %w", err)
	}
	return nil
}

package reminders

import (
	"context"

	"github.com/evlasova/moodkeeper/internal/models"
)

// Repository describes CRUD operations for reminder times.
type Repository interface {
	// CreateOrUpdate inserts a new reminder or replaces an existing one by ID.
	CreateOrUpdate(ctx context.Context, rem *models.ReminderTime) error

	// GetAll returns all reminders, ordered alphabetically by time string
	// when an order is requested.
	GetAll(ctx context.Context, order models.SortOrder) ([]models.ReminderTime, error)

	// GetByID returns a reminder by id, or nil if it does not exist.
	GetByID(ctx context.Context, id string) (*models.ReminderTime, error)

	// DeleteByID removes a reminder; deleting an absent id is a no-op.
	DeleteByID(ctx context.Context, id string) error

	// DeleteAll removes every reminder.
	DeleteAll(ctx context.Context) error
}

package journal

import (
	"context"

	"github.com/evlasova/moodkeeper/internal/models"
)

// Repository describes CRUD and query operations for journal records.
// Implementations are backed by the local SQLite database.
type Repository interface {
	// CreateOrUpdate inserts a new record or fully replaces an existing one
	// by ID.
	CreateOrUpdate(ctx context.Context, rec *models.JournalRecord) error

	// GetAll returns all records, ordered by creation time when an order is
	// requested; otherwise the order is implementation-chosen.
	GetAll(ctx context.Context, order models.SortOrder) ([]models.JournalRecord, error)

	// GetByID returns a record by id, or nil if it does not exist.
	GetByID(ctx context.Context, id string) (*models.JournalRecord, error)

	// DeleteByID removes a record; deleting an absent id is a no-op.
	DeleteByID(ctx context.Context, id string) error

	// DeleteAll removes every journal record.
	DeleteAll(ctx context.Context) error
}

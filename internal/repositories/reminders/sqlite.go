package reminders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/evlasova/moodkeeper/internal/dbx"
	"github.com/evlasova/moodkeeper/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or
// *sql.Tx). Times are stored as "HH:mm" strings, so alphabetical order is
// chronological order.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// CreateOrUpdate upserts a reminder by id.
func (r *SQLiteRepository) CreateOrUpdate(ctx context.Context, rem *models.ReminderTime) error {
	query := ` INSERT INTO reminder_times (id, time)
			values (?, ?)
			ON CONFLICT(id) DO UPDATE SET time = excluded.time
	`
	if _, err := r.db.ExecContext(ctx, query, rem.ID, rem.Time); err != nil {
		return fmt.Errorf("failed to upsert reminder: %w", err)
	}
	return nil
}

// GetAll lists all reminders.
func (r *SQLiteRepository) GetAll(ctx context.Context, order models.SortOrder) ([]models.ReminderTime, error) {
	query := `select id, time from reminder_times`
	switch order {
	case models.OrderAscending:
		query += ` order by time asc`
	case models.OrderDescending:
		query += ` order by time desc`
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select reminders: %w", err)
	}
	defer rows.Close()

	var result []models.ReminderTime
	for rows.Next() {
		var item models.ReminderTime
		if err := rows.Scan(&item.ID, &item.Time); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID returns a single reminder, or nil if the id is absent.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.ReminderTime, error) {
	row := r.db.QueryRowContext(ctx, `select id, time from reminder_times where id=?`, id)

	rem := &models.ReminderTime{}
	if err := row.Scan(&rem.ID, &rem.Time); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return rem, nil
}

// DeleteByID removes a reminder. Zero affected rows is not an error.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `delete from reminder_times where id=?`, id); err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	return nil
}

// DeleteAll clears the reminder_times table.
func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `delete from reminder_times`); err != nil {
		return fmt.Errorf("failed to delete reminders: %w", err)
	}
	return nil
}

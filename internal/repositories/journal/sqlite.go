package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/evlasova/moodkeeper/internal/dbx"
	"github.com/evlasova/moodkeeper/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or
// *sql.Tx). Timestamps are stored as integer unix nanoseconds so ordering is
// plain numeric comparison.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// CreateOrUpdate upserts a journal record by id. On conflict every column is
// replaced; a save is always a full-record upsert, never a partial patch.
func (r *SQLiteRepository) CreateOrUpdate(ctx context.Context, rec *models.JournalRecord) error {
	query := ` INSERT INTO journal_records (id, emotion, answer_one, answer_two, answer_three, created_at)
			values (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET emotion = excluded.emotion,
				answer_one = excluded.answer_one,
				answer_two = excluded.answer_two,
				answer_three = excluded.answer_three,
				created_at = excluded.created_at
	`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.Emotion, rec.AnswerOne, rec.AnswerTwo, rec.AnswerThree, rec.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to upsert journal record: %w", err)
	}
	return nil
}

// GetAll lists all journal records, ordered by creation time when requested.
func (r *SQLiteRepository) GetAll(ctx context.Context, order models.SortOrder) ([]models.JournalRecord, error) {
	query := `select id, emotion, answer_one, answer_two, answer_three, created_at from journal_records`
	switch order {
	case models.OrderAscending:
		query += ` order by created_at asc`
	case models.OrderDescending:
		query += ` order by created_at desc`
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select journal records: %w", err)
	}
	defer rows.Close()

	var result []models.JournalRecord
	for rows.Next() {
		var item models.JournalRecord
		var createdAt int64
		if err := rows.Scan(&item.ID, &item.Emotion, &item.AnswerOne, &item.AnswerTwo, &item.AnswerThree, &createdAt); err != nil {
			return nil, err
		}
		item.CreatedAt = time.Unix(0, createdAt)
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID returns a single journal record, or nil if the id is absent.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.JournalRecord, error) {
	query := `select id, emotion, answer_one, answer_two, answer_three, created_at from journal_records where id=?`
	row := r.db.QueryRowContext(ctx, query, id)

	rec := &models.JournalRecord{}
	var createdAt int64
	if err := row.Scan(&rec.ID, &rec.Emotion, &rec.AnswerOne, &rec.AnswerTwo, &rec.AnswerThree, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	rec.CreatedAt = time.Unix(0, createdAt)
	return rec, nil
}

// DeleteByID removes a journal record. Zero affected rows is not an error.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	query := `delete from journal_records where id=?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete journal record: %w", err)
	}
	return nil
}

// DeleteAll clears the journal_records table.
func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `delete from journal_records`); err != nil {
		return fmt.Errorf("failed to delete journal records: %w", err)
	}
	return nil
}

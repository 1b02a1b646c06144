package answers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/evlasova/moodkeeper/internal/dbx"
	"github.com/evlasova/moodkeeper/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or
// *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// CreateOrUpdate upserts an option by id.
func (r *SQLiteRepository) CreateOrUpdate(ctx context.Context, opt *models.QuestionAnswerOption) error {
	query := ` INSERT INTO question_answers (id, question_index, answer)
			values (?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				question_index = excluded.question_index,
				answer = excluded.answer
	`
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.QuestionIndex, opt.Answer); err != nil {
		return fmt.Errorf("failed to upsert answer: %w", err)
	}
	return nil
}

// GetAll lists every answer option across all questions.
func (r *SQLiteRepository) GetAll(ctx context.Context, order models.SortOrder) ([]models.QuestionAnswerOption, error) {
	query := `select id, question_index, answer from question_answers`
	switch order {
	case models.OrderAscending:
		query += ` order by question_index asc, rowid asc`
	case models.OrderDescending:
		query += ` order by question_index desc, rowid asc`
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select answers: %w", err)
	}
	defer rows.Close()

	var result []models.QuestionAnswerOption
	for rows.Next() {
		var item models.QuestionAnswerOption
		if err := rows.Scan(&item.ID, &item.QuestionIndex, &item.Answer); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID returns a single option, or nil if the id is absent.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.QuestionAnswerOption, error) {
	row := r.db.QueryRowContext(ctx, `select id, question_index, answer from question_answers where id=?`, id)

	opt := &models.QuestionAnswerOption{}
	if err := row.Scan(&opt.ID, &opt.QuestionIndex, &opt.Answer); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return opt, nil
}

// GetByQuestion lists answer options for one question in insertion order.
func (r *SQLiteRepository) GetByQuestion(ctx context.Context, questionIndex int) ([]models.QuestionAnswerOption, error) {
	query := `select id, question_index, answer from question_answers where question_index=? order by rowid`
	rows, err := r.db.QueryContext(ctx, query, questionIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to select answers: %w", err)
	}
	defer rows.Close()

	var result []models.QuestionAnswerOption
	for rows.Next() {
		var item models.QuestionAnswerOption
		if err := rows.Scan(&item.ID, &item.QuestionIndex, &item.Answer); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// AddIfAbsent inserts the option unless the same (question_index, answer)
// pair is already stored. The dedup lives in the statement itself so the
// check and the insert share one round trip.
func (r *SQLiteRepository) AddIfAbsent(ctx context.Context, opt *models.QuestionAnswerOption) error {
	query := ` INSERT INTO question_answers (id, question_index, answer)
			SELECT ?, ?, ?
			WHERE NOT EXISTS (
				SELECT 1 FROM question_answers WHERE question_index=? AND answer=?
			)
	`
	_, err := r.db.ExecContext(ctx, query,
		opt.ID, opt.QuestionIndex, opt.Answer, opt.QuestionIndex, opt.Answer)
	if err != nil {
		return fmt.Errorf("failed to insert answer: %w", err)
	}
	return nil
}

// DeleteByID removes an option by id. Zero affected rows is not an error.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `delete from question_answers where id=?`, id); err != nil {
		return fmt.Errorf("failed to delete answer: %w", err)
	}
	return nil
}

// DeleteByText removes the option matching (questionIndex, answer). Zero
// affected rows is not an error.
func (r *SQLiteRepository) DeleteByText(ctx context.Context, answer string, questionIndex int) error {
	query := `delete from question_answers where question_index=? and answer=?`
	if _, err := r.db.ExecContext(ctx, query, questionIndex, answer); err != nil {
		return fmt.Errorf("failed to delete answer: %w", err)
	}
	return nil
}

// DeleteAll clears the question_answers table.
func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `delete from question_answers`); err != nil {
		return fmt.Errorf("failed to delete answers: %w", err)
	}
	return nil
}

// Count returns the total number of stored options.
func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	row := r.db.QueryRowContext(ctx, `select count(*) from question_answers`)
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count answers: %w", err)
	}
	return n, nil
}

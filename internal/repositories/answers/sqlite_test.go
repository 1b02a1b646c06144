package answers

import (
	"context"
	"database/sql"
	"testing"

	"github.com/evlasova/moodkeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE question_answers (
  id TEXT PRIMARY KEY,
  question_index INTEGER NOT NULL,
  answer TEXT NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func TestCreateOrUpdate_UpsertsByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	opt := &models.QuestionAnswerOption{ID: "a1", QuestionIndex: 0, Answer: "Work"}
	require.NoError(t, r.CreateOrUpdate(ctx, opt))

	opt.QuestionIndex = 1
	opt.Answer = "Sleep"
	require.NoError(t, r.CreateOrUpdate(ctx, opt))

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := r.GetByID(ctx, "a1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.QuestionIndex)
	assert.Equal(t, "Sleep", got.Answer)
}

func TestGetByID_AbsentReturnsNil(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	got, err := r.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetAll_OrderedByQuestion(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.CreateOrUpdate(ctx, &models.QuestionAnswerOption{ID: "a1", QuestionIndex: 2, Answer: "Rest"}))
	require.NoError(t, r.CreateOrUpdate(ctx, &models.QuestionAnswerOption{ID: "a2", QuestionIndex: 0, Answer: "Work"}))
	require.NoError(t, r.CreateOrUpdate(ctx, &models.QuestionAnswerOption{ID: "a3", QuestionIndex: 0, Answer: "Family"}))

	got, err := r.GetAll(ctx, models.OrderAscending)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "a2", got[0].ID)
	assert.Equal(t, "a3", got[1].ID) // insertion order within a question
	assert.Equal(t, "a1", got[2].ID)

	got, err = r.GetAll(ctx, models.OrderDescending)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "a1", got[0].ID)
}

func TestDeleteByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.DeleteByID(ctx, "missing")) // absent: no-op

	require.NoError(t, r.CreateOrUpdate(ctx, &models.QuestionAnswerOption{ID: "a1", QuestionIndex: 0, Answer: "Work"}))
	require.NoError(t, r.DeleteByID(ctx, "a1"))

	got, err := r.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAddIfAbsent_DuplicateIsNoop(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.AddIfAbsent(ctx, &models.QuestionAnswerOption{ID: "a1", QuestionIndex: 0, Answer: "Work"}))
	// same text, same question, different id: must not create a second row
	require.NoError(t, r.AddIfAbsent(ctx, &models.QuestionAnswerOption{ID: "a2", QuestionIndex: 0, Answer: "Work"}))
	// same text on another question is a distinct option
	require.NoError(t, r.AddIfAbsent(ctx, &models.QuestionAnswerOption{ID: "a3", QuestionIndex: 1, Answer: "Work"}))

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := r.GetByQuestion(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a1", got[0].ID)
}

func TestGetByQuestion_InsertionOrder(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	for i, text := range []string{"Work", "Family", "Friends"} {
		require.NoError(t, r.AddIfAbsent(ctx, &models.QuestionAnswerOption{
			ID: string(rune('a' + i)), QuestionIndex: 2, Answer: text,
		}))
	}

	got, err := r.GetByQuestion(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Work", got[0].Answer)
	assert.Equal(t, "Family", got[1].Answer)
	assert.Equal(t, "Friends", got[2].Answer)
}

func TestDeleteByText(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.AddIfAbsent(ctx, &models.QuestionAnswerOption{ID: "a1", QuestionIndex: 0, Answer: "Work"}))

	require.NoError(t, r.DeleteByText(ctx, "Work", 0))
	// deleting again is a no-op
	require.NoError(t, r.DeleteByText(ctx, "Work", 0))

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestDeleteAll(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.AddIfAbsent(ctx, &models.QuestionAnswerOption{ID: "a1", QuestionIndex: 0, Answer: "Work"}))
	require.NoError(t, r.AddIfAbsent(ctx, &models.QuestionAnswerOption{ID: "a2", QuestionIndex: 1, Answer: "Sleep"}))

	require.NoError(t, r.DeleteAll(ctx))

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

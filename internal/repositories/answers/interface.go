package answers

import (
	"context"

	"github.com/evlasova/moodkeeper/internal/models"
)

// Repository describes operations for question answer options. Uniqueness of
// (question index, answer text) is a write-path rule, not a schema
// constraint, which is why inserts go through AddIfAbsent.
type Repository interface {
	// GetAll returns every answer option. An explicit order sorts by question
	// index, insertion order within a question.
	GetAll(ctx context.Context, order models.SortOrder) ([]models.QuestionAnswerOption, error)

	// GetByID returns a single option, or nil if the id is absent.
	GetByID(ctx context.Context, id string) (*models.QuestionAnswerOption, error)

	// GetByQuestion returns all answer options for one question index, in
	// insertion order.
	GetByQuestion(ctx context.Context, questionIndex int) ([]models.QuestionAnswerOption, error)

	// CreateOrUpdate upserts an option by id.
	CreateOrUpdate(ctx context.Context, opt *models.QuestionAnswerOption) error

	// AddIfAbsent inserts the option unless an option with the same
	// (QuestionIndex, Answer) pair already exists; duplicates are a no-op.
	AddIfAbsent(ctx context.Context, opt *models.QuestionAnswerOption) error

	// DeleteByID removes an option by id; absent ids are a no-op.
	DeleteByID(ctx context.Context, id string) error

	// DeleteByText removes the option matching (questionIndex, answer);
	// absent options are a no-op.
	DeleteByText(ctx context.Context, answer string, questionIndex int) error

	// DeleteAll removes every answer option.
	DeleteAll(ctx context.Context) error

	// Count returns the total number of stored options across all questions.
	Count(ctx context.Context) (int, error)
}

package store

import (
	"context"

	"github.com/evlasova/moodkeeper/internal/common"
	"github.com/evlasova/moodkeeper/internal/dbx"
	"github.com/evlasova/moodkeeper/internal/models"
	"github.com/evlasova/moodkeeper/internal/repositories/answers"
	"github.com/google/uuid"
)

// ensureSeeded writes the default answer set on the first use of the
// question-answer kind during this store's lifetime. Runs only on the store
// goroutine: the seeded flag is the primary guard, the row-count check the
// secondary one, so a flag lost to a restart cannot duplicate the defaults.
// The flag flips only after the seed transaction commits.
func (s *Store) ensureSeeded(ctx context.Context) error {
	if s.seeded {
		return nil
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := answers.NewSQLiteRepository(tx)

		n, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		for idx := 0; idx < models.QuestionCount; idx++ {
			for _, text := range models.DefaultAnswers[idx] {
				opt := &models.QuestionAnswerOption{
					ID:            uuid.NewString(),
					QuestionIndex: idx,
					Answer:        text,
				}
				if err := repo.AddIfAbsent(ctx, opt); err != nil {
					return err
				}
			}
		}
		s.log.Info(ctx, "seeded default question answers")
		return nil
	})
	if err != nil {
		return tag(err, common.ErrContextSave, "seed default answers")
	}

	s.seeded = true
	return nil
}

// withAnswers runs fn in a fresh transaction after making sure the defaults
// are seeded. The seed commits in its own transaction, so a failing op can
// never roll the defaults back.
func (s *Store) withAnswers(ctx context.Context, kind error, op string, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	err := s.do(ctx, func(ctx context.Context) error {
		if err := s.ensureSeeded(ctx); err != nil {
			return err
		}
		return dbx.WithTx(ctx, s.db, nil, fn)
	})
	return tag(err, kind, op)
}

// FetchAllAnswers returns every answer option; an explicit order sorts by
// question index, insertion order within a question.
func (s *Store) FetchAllAnswers(ctx context.Context, order models.SortOrder) ([]models.QuestionAnswerOption, error) {
	var opts []models.QuestionAnswerOption
	err := s.withAnswers(ctx, common.ErrUnexpected, "fetch all answers", func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		opts, err = answers.NewSQLiteRepository(tx).GetAll(ctx, order)
		return err
	})
	if err != nil {
		return nil, err
	}
	return opts, nil
}

// FetchAnswer returns one answer option, or nil if the id is absent.
func (s *Store) FetchAnswer(ctx context.Context, id string) (*models.QuestionAnswerOption, error) {
	var opt *models.QuestionAnswerOption
	err := s.withAnswers(ctx, common.ErrUnexpected, "fetch answer", func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		opt, err = answers.NewSQLiteRepository(tx).GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return opt, nil
}

// FetchAnswers returns the answer options of one question in insertion order.
func (s *Store) FetchAnswers(ctx context.Context, questionIndex int) ([]models.QuestionAnswerOption, error) {
	var opts []models.QuestionAnswerOption
	err := s.withAnswers(ctx, common.ErrUnexpected, "fetch answers", func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		opts, err = answers.NewSQLiteRepository(tx).GetByQuestion(ctx, questionIndex)
		return err
	})
	if err != nil {
		return nil, err
	}
	return opts, nil
}

// SaveAnswer upserts an answer option by id. Unlike AddAnswer it does not
// deduplicate by text; it is the raw per-record write.
func (s *Store) SaveAnswer(ctx context.Context, opt models.QuestionAnswerOption) error {
	return s.withAnswers(ctx, common.ErrContextSave, "save answer", func(ctx context.Context, tx dbx.DBTX) error {
		return answers.NewSQLiteRepository(tx).CreateOrUpdate(ctx, &opt)
	})
}

// AddAnswer stores a new answer option unless the same (questionIndex, text)
// pair already exists; duplicates are a silent no-op.
func (s *Store) AddAnswer(ctx context.Context, text string, questionIndex int) error {
	return s.withAnswers(ctx, common.ErrContextSave, "add answer", func(ctx context.Context, tx dbx.DBTX) error {
		opt := &models.QuestionAnswerOption{
			ID:            uuid.NewString(),
			QuestionIndex: questionIndex,
			Answer:        text,
		}
		return answers.NewSQLiteRepository(tx).AddIfAbsent(ctx, opt)
	})
}

// DeleteAnswer removes an answer option by id; absent ids are a no-op.
func (s *Store) DeleteAnswer(ctx context.Context, id string) error {
	return s.withAnswers(ctx, common.ErrContextSave, "delete answer", func(ctx context.Context, tx dbx.DBTX) error {
		return answers.NewSQLiteRepository(tx).DeleteByID(ctx, id)
	})
}

// DeleteAnswerByText removes the option matching (questionIndex, text);
// absent options are a no-op.
func (s *Store) DeleteAnswerByText(ctx context.Context, text string, questionIndex int) error {
	return s.withAnswers(ctx, common.ErrContextSave, "delete answer by text", func(ctx context.Context, tx dbx.DBTX) error {
		return answers.NewSQLiteRepository(tx).DeleteByText(ctx, text, questionIndex)
	})
}

// DeleteAllAnswers removes every stored answer option, including the seeded
// defaults. The seeded flag stays set: defaults come back only with a new
// store lifetime.
func (s *Store) DeleteAllAnswers(ctx context.Context) error {
	return s.withAnswers(ctx, common.ErrContextSave, "delete all answers", func(ctx context.Context, tx dbx.DBTX) error {
		return answers.NewSQLiteRepository(tx).DeleteAll(ctx)
	})
}

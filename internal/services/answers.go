package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/evlasova/moodkeeper/internal/models"
)

var (
	// ErrEmptyAnswer is returned when a custom answer is blank after trimming.
	ErrEmptyAnswer = errors.New("answer text is empty")

	// ErrInvalidQuestionIndex is returned for a question index outside
	// 0..models.QuestionCount-1.
	ErrInvalidQuestionIndex = errors.New("invalid question index")
)

// AnswerStore is the slice of the record store the answer service needs.
type AnswerStore interface {
	FetchAnswers(ctx context.Context, questionIndex int) ([]models.QuestionAnswerOption, error)
	AddAnswer(ctx context.Context, text string, questionIndex int) error
	DeleteAnswerByText(ctx context.Context, text string, questionIndex int) error
}

// AnswerService manages the selectable answers of the fixed question set.
type AnswerService interface {
	// GetAnswers returns the options of one question in insertion order.
	GetAnswers(ctx context.Context, questionIndex int) ([]models.QuestionAnswerOption, error)

	// AddCustomAnswer stores a user-provided option; duplicates are a no-op.
	AddCustomAnswer(ctx context.Context, text string, questionIndex int) error

	// RemoveAnswer deletes an option; absent options are a no-op.
	RemoveAnswer(ctx context.Context, text string, questionIndex int) error
}

type answerService struct {
	store AnswerStore
}

// NewAnswerService returns an AnswerService over the given store.
func NewAnswerService(store AnswerStore) AnswerService {
	return &answerService{store: store}
}

func validQuestionIndex(idx int) bool {
	return idx >= 0 && idx < models.QuestionCount
}

func (s *answerService) GetAnswers(ctx context.Context, questionIndex int) ([]models.QuestionAnswerOption, error) {
	if !validQuestionIndex(questionIndex) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuestionIndex, questionIndex)
	}

	opts, err := s.store.FetchAnswers(ctx, questionIndex)
	if err != nil {
		return nil, fmt.Errorf("error retrieving answers: %w", err)
	}
	return opts, nil
}

func (s *answerService) AddCustomAnswer(ctx context.Context, text string, questionIndex int) error {
	if !validQuestionIndex(questionIndex) {
		return fmt.Errorf("%w: %d", ErrInvalidQuestionIndex, questionIndex)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyAnswer
	}

	if err := s.store.AddAnswer(ctx, text, questionIndex); err != nil {
		return fmt.Errorf("error saving answer: %w", err)
	}
	return nil
}

func (s *answerService) RemoveAnswer(ctx context.Context, text string, questionIndex int) error {
	if !validQuestionIndex(questionIndex) {
		return fmt.Errorf("%w: %d", ErrInvalidQuestionIndex, questionIndex)
	}

	if err := s.store.DeleteAnswerByText(ctx, text, questionIndex); err != nil {
		return fmt.Errorf("error deleting answer: %w", err)
	}
	return nil
}

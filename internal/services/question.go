package services

import (
	"context"

	"place-share-backend/internal/models"
)

// QuestionStore is the subset of the question repository the service needs
type QuestionStore interface {
	List(ctx context.Context) ([]*models.Question, error)
}

// QuestionService handles question-board business logic
type QuestionService struct {
	questions QuestionStore
}

// NewQuestionService creates a new question service
func NewQuestionService(questions QuestionStore) *QuestionService {
	return &QuestionService{questions: questions}
}

// ListQuestions retrieves all questions newest-first
func (s *QuestionService) ListQuestions(ctx context.Context) ([]*models.Question, error) {
	return s.questions.List(ctx)
}

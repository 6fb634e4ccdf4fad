package repository

import (
	"context"
	"fmt"

	"place-share-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// QuestionRepository handles database operations for questions
type QuestionRepository struct {
	db *pgxpool.Pool
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// List retrieves all questions newest-first
func (r *QuestionRepository) List(ctx context.Context) ([]*models.Question, error) {
	query := `
		SELECT id, content, created_at
		FROM questions
		ORDER BY id DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	var questions []*models.Question
	for rows.Next() {
		var question models.Question
		if err := rows.Scan(&question.ID, &question.Content, &question.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, &question)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating questions: %w", err)
	}

	return questions, nil
}

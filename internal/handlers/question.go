package handlers

import (
	"context"
	"net/http"

	"place-share-backend/internal/models"

	"github.com/rs/zerolog/log"
)

// questionService is the subset of the question service the handler needs
type questionService interface {
	ListQuestions(ctx context.Context) ([]*models.Question, error)
}

// QuestionHandler handles question-board HTTP requests
type QuestionHandler struct {
	questionService questionService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionService questionService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
	}
}

// ListQuestions handles GET /api/questions
func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	questions, err := h.questionService.ListQuestions(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list questions")
		respondError(w, "Failed to load questions", http.StatusInternalServerError)
		return
	}

	if questions == nil {
		questions = []*models.Question{}
	}

	respondJSON(w, questions, http.StatusOK)
}

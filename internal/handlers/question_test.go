package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"place-share-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuestionService struct {
	questions []*models.Question
	err       error
}

func (f *fakeQuestionService) ListQuestions(_ context.Context) ([]*models.Question, error) {
	return f.questions, f.err
}

func TestListQuestions(t *testing.T) {
	h := NewQuestionHandler(&fakeQuestionService{questions: []*models.Question{
		{ID: 2, Content: "second"},
		{ID: 1, Content: "first"},
	}})

	rec := httptest.NewRecorder()
	h.ListQuestions(rec, httptest.NewRequest(http.MethodGet, "/api/questions", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "second", got[0]["content"])
}

func TestListQuestionsEmpty(t *testing.T) {
	h := NewQuestionHandler(&fakeQuestionService{})

	rec := httptest.NewRecorder()
	h.ListQuestions(rec, httptest.NewRequest(http.MethodGet, "/api/questions", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListQuestionsStoreError(t *testing.T) {
	h := NewQuestionHandler(&fakeQuestionService{err: fmt.Errorf("connection refused")})

	rec := httptest.NewRecorder()
	h.ListQuestions(rec, httptest.NewRequest(http.MethodGet, "/api/questions", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

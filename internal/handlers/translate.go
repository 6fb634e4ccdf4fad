package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// translateService is the subset of the translate service the handler needs
type translateService interface {
	Translate(ctx context.Context, text, targetLang string) ([]byte, error)
}

// TranslateHandler handles translation proxy HTTP requests
type TranslateHandler struct {
	translateService translateService
}

// NewTranslateHandler creates a new translate handler
func NewTranslateHandler(translateService translateService) *TranslateHandler {
	return &TranslateHandler{
		translateService: translateService,
	}
}

// TranslateRequest represents the request body for a translation
type TranslateRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"target_lang"`
}

// Translate handles POST /translate
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		respondError(w, "text is required", http.StatusBadRequest)
		return
	}

	body, err := h.translateService.Translate(ctx, req.Text, req.TargetLang)
	if err != nil {
		log.Error().Err(err).Msg("Failed to translate text")
		respondError(w, "Translation failed", http.StatusInternalServerError)
		return
	}

	// Upstream body is relayed verbatim
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

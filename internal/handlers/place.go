package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"place-share-backend/internal/models"
	"place-share-backend/internal/repository"
	"place-share-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// placeService is the subset of the place service the handler needs
type placeService interface {
	ListPlaces(ctx context.Context) ([]*models.Place, error)
	CreatePlace(ctx context.Context, req services.CreatePlaceRequest) error
	LikePlace(ctx context.Context, placeID int64, ip string) (int64, error)
}

// PlaceHandler handles place-related HTTP requests
type PlaceHandler struct {
	placeService placeService
}

// NewPlaceHandler creates a new place handler
func NewPlaceHandler(placeService placeService) *PlaceHandler {
	return &PlaceHandler{
		placeService: placeService,
	}
}

// ListPlaces handles GET /api/places
func (h *PlaceHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	places, err := h.placeService.ListPlaces(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list places")
		respondError(w, "Failed to load places", http.StatusInternalServerError)
		return
	}

	if places == nil {
		places = []*models.Place{}
	}

	respondJSON(w, places, http.StatusOK)
}

// CreatePlace handles POST /api/places
func (h *PlaceHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req services.CreatePlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.placeService.CreatePlace(ctx, req); err != nil {
		if errors.Is(err, services.ErrTitleRequired) {
			respondError(w, "title is required", http.StatusBadRequest)
			return
		}

		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create place")
		respondError(w, "Failed to save place", http.StatusInternalServerError)
		return
	}

	log.Info().Str("title", req.Title).Msg("Place created")

	respondJSON(w, map[string]interface{}{"success": true}, http.StatusOK)
}

// LikePlace handles POST /api/places/{id}/like
func (h *PlaceHandler) LikePlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	placeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || placeID <= 0 {
		respondError(w, "Invalid place id", http.StatusBadRequest)
		return
	}

	ip := clientIP(r)

	likeCount, err := h.placeService.LikePlace(ctx, placeID, ip)
	if err != nil {
		if errors.Is(err, repository.ErrConstraintViolation) {
			respondError(w, "You have already liked this place", http.StatusBadRequest)
			return
		}

		log.Error().Err(err).Int64("place_id", placeID).Str("ip", ip).Msg("Failed to like place")
		respondError(w, "Failed to like place", http.StatusInternalServerError)
		return
	}

	log.Info().Int64("place_id", placeID).Str("ip", ip).Int64("like_count", likeCount).Msg("Place liked")

	respondJSON(w, map[string]interface{}{
		"success":    true,
		"like_count": likeCount,
	}, http.StatusOK)
}

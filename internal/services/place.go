package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"place-share-backend/internal/models"
)

// ErrTitleRequired is returned when a place is submitted without a
// non-empty title.
var ErrTitleRequired = errors.New("title is required")

// PlaceStore is the subset of the place repository the service needs
type PlaceStore interface {
	Create(ctx context.Context, place *models.Place) error
	List(ctx context.Context) ([]*models.Place, error)
}

// LikeStore is the subset of the like repository the service needs
type LikeStore interface {
	Create(ctx context.Context, placeID int64, ip string) error
	CountByPlaceID(ctx context.Context, placeID int64) (int64, error)
}

// PlaceService handles place-related business logic
type PlaceService struct {
	places PlaceStore
	likes  LikeStore
}

// NewPlaceService creates a new place service
func NewPlaceService(places PlaceStore, likes LikeStore) *PlaceService {
	return &PlaceService{
		places: places,
		likes:  likes,
	}
}

// CreatePlaceRequest represents the request body for creating a place
type CreatePlaceRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Tags        models.TagList `json:"tags"`
	Lat         *float64       `json:"lat"`
	Lng         *float64       `json:"lng"`
	ImageURL    *string        `json:"image_url"`
}

// CreatePlace validates and stores a new place. Places are immutable
// once created; duplicates by title are allowed.
func (s *PlaceService) CreatePlace(ctx context.Context, req CreatePlaceRequest) error {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return ErrTitleRequired
	}

	place := &models.Place{
		Title:       title,
		Description: req.Description,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Tags:        models.NormalizeTags(req.Tags),
		ImageURL:    req.ImageURL,
	}

	if err := s.places.Create(ctx, place); err != nil {
		return fmt.Errorf("failed to save place: %w", err)
	}
	return nil
}

// ListPlaces retrieves all places newest-first with like counts
func (s *PlaceService) ListPlaces(ctx context.Context) ([]*models.Place, error) {
	return s.places.List(ctx)
}

// LikePlace records a like from the given client ip and returns the
// updated distinct-ip count. The insert and the count are two separate
// statements; under concurrent likes the returned count is a snapshot,
// the listing query stays authoritative.
func (s *PlaceService) LikePlace(ctx context.Context, placeID int64, ip string) (int64, error) {
	if err := s.likes.Create(ctx, placeID, ip); err != nil {
		return 0, err
	}
	return s.likes.CountByPlaceID(ctx, placeID)
}

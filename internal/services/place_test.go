package services

import (
	"context"
	"fmt"
	"testing"

	"place-share-backend/internal/models"
	"place-share-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlaceStore struct {
	created []*models.Place
	listed  []*models.Place
	err     error
}

func (f *fakePlaceStore) Create(_ context.Context, place *models.Place) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, place)
	return nil
}

func (f *fakePlaceStore) List(_ context.Context) ([]*models.Place, error) {
	return f.listed, f.err
}

type fakeLikeStore struct {
	createErr error
	count     int64
	likes     []string
}

func (f *fakeLikeStore) Create(_ context.Context, placeID int64, ip string) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.likes = append(f.likes, fmt.Sprintf("%d/%s", placeID, ip))
	return nil
}

func (f *fakeLikeStore) CountByPlaceID(_ context.Context, _ int64) (int64, error) {
	return f.count, nil
}

func TestCreatePlaceTrimsTitleAndNormalizesTags(t *testing.T) {
	store := &fakePlaceStore{}
	svc := NewPlaceService(store, &fakeLikeStore{})

	err := svc.CreatePlace(context.Background(), CreatePlaceRequest{
		Title: "  Cafe X  ",
		Tags:  models.TagList{"cozy", " quiet ", ""},
	})
	require.NoError(t, err)

	require.Len(t, store.created, 1)
	assert.Equal(t, "Cafe X", store.created[0].Title)
	assert.Equal(t, models.TagList{"cozy", "quiet"}, store.created[0].Tags)
}

func TestCreatePlaceRequiresTitle(t *testing.T) {
	store := &fakePlaceStore{}
	svc := NewPlaceService(store, &fakeLikeStore{})

	for _, title := range []string{"", "   "} {
		err := svc.CreatePlace(context.Background(), CreatePlaceRequest{Title: title})
		assert.ErrorIs(t, err, ErrTitleRequired)
	}
	assert.Empty(t, store.created)
}

func TestCreatePlaceKeepsOptionalFields(t *testing.T) {
	store := &fakePlaceStore{}
	svc := NewPlaceService(store, &fakeLikeStore{})

	lat, lng := 35.6, 139.7
	imageURL := "/uploads/cafe.jpg"
	err := svc.CreatePlace(context.Background(), CreatePlaceRequest{
		Title:       "Cafe X",
		Description: "good coffee",
		Lat:         &lat,
		Lng:         &lng,
		ImageURL:    &imageURL,
	})
	require.NoError(t, err)

	created := store.created[0]
	assert.Equal(t, "good coffee", created.Description)
	assert.Equal(t, &lat, created.Lat)
	assert.Equal(t, &lng, created.Lng)
	assert.Equal(t, &imageURL, created.ImageURL)
}

func TestLikePlaceReturnsUpdatedCount(t *testing.T) {
	likes := &fakeLikeStore{count: 3}
	svc := NewPlaceService(&fakePlaceStore{}, likes)

	count, err := svc.LikePlace(context.Background(), 7, "1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Equal(t, []string{"7/1.2.3.4"}, likes.likes)
}

func TestLikePlacePropagatesDuplicate(t *testing.T) {
	likes := &fakeLikeStore{
		createErr: fmt.Errorf("place 7 already liked: %w", repository.ErrConstraintViolation),
	}
	svc := NewPlaceService(&fakePlaceStore{}, likes)

	_, err := svc.LikePlace(context.Background(), 7, "1.2.3.4")
	assert.ErrorIs(t, err, repository.ErrConstraintViolation)
}

func TestListPlaces(t *testing.T) {
	store := &fakePlaceStore{listed: []*models.Place{
		{ID: 2, Title: "B"},
		{ID: 1, Title: "A"},
	}}
	svc := NewPlaceService(store, &fakeLikeStore{})

	places, err := svc.ListPlaces(context.Background())
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, int64(2), places[0].ID)
}

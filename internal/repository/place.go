package repository

import (
	"context"
	"fmt"

	"place-share-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PlaceRepository handles database operations for places
type PlaceRepository struct {
	db *pgxpool.Pool
}

// NewPlaceRepository creates a new place repository
func NewPlaceRepository(db *pgxpool.Pool) *PlaceRepository {
	return &PlaceRepository{db: db}
}

// Create inserts a new place. The id and created_at are assigned by
// the database. Tags are stored as a single comma-delimited string,
// NULL when the list is empty.
func (r *PlaceRepository) Create(ctx context.Context, place *models.Place) error {
	query := `
		INSERT INTO places (title, description, lat, lng, tags, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	var tags *string
	if len(place.Tags) > 0 {
		joined := place.Tags.Join()
		tags = &joined
	}

	_, err := r.db.Exec(ctx, query,
		place.Title, place.Description, place.Lat, place.Lng, tags, place.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("failed to create place: %w", err)
	}
	return nil
}

// List retrieves all places newest-first, each with its distinct-ip
// like count computed in the same query.
func (r *PlaceRepository) List(ctx context.Context) ([]*models.Place, error) {
	query := `
		SELECT
			p.id, p.title, p.description, p.lat, p.lng, p.tags, p.image_url, p.created_at,
			COUNT(DISTINCT pl.ip) AS like_count
		FROM places p
		LEFT JOIN place_likes pl ON pl.place_id = p.id
		GROUP BY p.id
		ORDER BY p.id DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}
	defer rows.Close()

	var places []*models.Place
	for rows.Next() {
		var place models.Place
		var tags *string
		err := rows.Scan(
			&place.ID, &place.Title, &place.Description, &place.Lat, &place.Lng,
			&tags, &place.ImageURL, &place.CreatedAt, &place.LikeCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan place: %w", err)
		}
		if tags != nil {
			place.Tags = models.SplitTags(*tags)
		} else {
			place.Tags = models.TagList{}
		}
		places = append(places, &place)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating places: %w", err)
	}

	return places, nil
}

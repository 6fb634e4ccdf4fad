package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LikeRepository handles database operations for place likes
type LikeRepository struct {
	db *pgxpool.Pool
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *pgxpool.Pool) *LikeRepository {
	return &LikeRepository{db: db}
}

// Create records a like from the given ip. The (place_id, ip) unique
// constraint is the only guard against double likes; a rejected insert
// surfaces as ErrConstraintViolation.
func (r *LikeRepository) Create(ctx context.Context, placeID int64, ip string) error {
	query := `INSERT INTO place_likes (place_id, ip) VALUES ($1, $2)`
	_, err := r.db.Exec(ctx, query, placeID, ip)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("place %d already liked by %s: %w", placeID, ip, ErrConstraintViolation)
		}
		return fmt.Errorf("failed to create like: %w", err)
	}
	return nil
}

// CountByPlaceID returns the number of distinct ips that liked a place
func (r *LikeRepository) CountByPlaceID(ctx context.Context, placeID int64) (int64, error) {
	query := `SELECT COUNT(DISTINCT ip) FROM place_likes WHERE place_id = $1`
	var count int64
	if err := r.db.QueryRow(ctx, query, placeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

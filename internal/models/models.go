package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Place represents a user-submitted point of interest
type Place struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Lat         *float64  `json:"lat"`
	Lng         *float64  `json:"lng"`
	Tags        TagList   `json:"tags"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	LikeCount   int64     `json:"like_count"`
}

// PlaceLike records that a client IP has liked a place.
// At most one row exists per (place_id, ip) pair.
type PlaceLike struct {
	PlaceID   int64     `json:"place_id"`
	IP        string    `json:"ip"`
	CreatedAt time.Time `json:"created_at"`
}

// Question represents a question-board entry
type Question struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// TagList is the ordered list of labels attached to a place. It is
// persisted as a single comma-delimited string; elements are always
// trimmed and never empty.
type TagList []string

// UnmarshalJSON accepts either an array of strings or a single
// comma-delimited string, normalizing both forms.
func (t *TagList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*t = NormalizeTags(arr)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("tags must be an array of strings or a string: %w", err)
	}
	*t = SplitTags(s)
	return nil
}

// SplitTags derives a TagList from the stored comma-delimited form.
// An empty input yields an empty, non-nil list.
func SplitTags(s string) TagList {
	return NormalizeTags(strings.Split(s, ","))
}

// NormalizeTags trims every element and drops the empty ones,
// preserving order.
func NormalizeTags(tags []string) TagList {
	out := make(TagList, 0, len(tags))
	for _, tag := range tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Join returns the stored comma-delimited form.
func (t TagList) Join() string {
	return strings.Join(t, ",")
}

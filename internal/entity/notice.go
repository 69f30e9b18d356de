package entity

import (
	"time"

	"github.com/google/uuid"
)

// BoundingBox describes the portrait photo region in percentages of the
// source image dimensions. Each value is in [0,100].
type BoundingBox struct {
	X      float64 `json:"x_percent"`
	Y      float64 `json:"y_percent"`
	Width  float64 `json:"width_percent"`
	Height float64 `json:"height_percent"`
}

// Notice represents a death notice for data transfer between layers.
type Notice struct {
	ID               uuid.UUID    `json:"id"`
	Hash             string       `json:"hash"`
	FullName         string       `json:"full_name"`
	OpeningQuote     *string      `json:"opening_quote,omitempty"`
	DeathDate        *time.Time   `json:"death_date,omitempty"`
	FuneralDate      *time.Time   `json:"funeral_date,omitempty"`
	AnnouncementText *string      `json:"announcement_text,omitempty"`
	Source           string       `json:"source"`
	SourceURL        string       `json:"source_url"`
	HasPhoto         bool         `json:"has_photo"`
	PhotoBBox        *BoundingBox `json:"photo_bbox,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Video stores object keys for the media file and thumbnail; presigned URLs
// are produced on read.
type Video struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VideoFile   string    `json:"videoFile"`
	Thumbnail   string    `json:"thumbnail"`
	Duration    float64   `json:"duration"`
	Views       int64     `json:"views"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
}

// VideoWithOwner is a listing row joined with the owner's public info.
type VideoWithOwner struct {
	Video
	OwnerUsername string `json:"ownerUsername"`
	OwnerFullName string `json:"ownerFullName"`
	OwnerAvatar   string `json:"ownerAvatar"`
}

// VideoListing names the knobs of a paginated video query.
type VideoListing struct {
	Page    int
	Limit   int
	SortBy  string
	SortAsc bool
	OwnerID uuid.UUID
	OnlyIDs []uuid.UUID
}

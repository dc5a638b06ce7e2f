package models

import (
	"time"

	"github.com/google/uuid"
)

type Playlist struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PlaylistWithVideos is the detail view with member videos in playlist order.
type PlaylistWithVideos struct {
	Playlist
	Videos []VideoWithOwner `json:"videos"`
}

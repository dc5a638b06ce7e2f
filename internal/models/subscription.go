package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription: Subscriber follows Channel (both are users).
type Subscription struct {
	ID         uuid.UUID `json:"id"`
	Subscriber uuid.UUID `json:"subscriber"`
	Channel    uuid.UUID `json:"channel"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ChannelStats is the dashboard aggregate for a channel.
type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos"`
	TotalViews       int64 `json:"totalViews"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalLikes       int64 `json:"totalLikes"`
}

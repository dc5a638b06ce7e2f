package models

import (
	"time"

	"github.com/google/uuid"
)

// LikeTarget discriminates what a like points at. Exactly one target id is
// set per like row.
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)

type Like struct {
	ID        uuid.UUID  `json:"id"`
	LikedBy   uuid.UUID  `json:"likedBy"`
	Target    LikeTarget `json:"target"`
	TargetID  uuid.UUID  `json:"targetId"`
	CreatedAt time.Time  `json:"createdAt"`
}
